package email

import "context"

type noopService struct{}

// NewNoopService returns a Service that silently drops all mail. Used
// when SMTP is disabled, typically in local development.
func NewNoopService() Service {
	return noopService{}
}

func (noopService) SendWelcome(ctx context.Context, to, name string) error {
	return nil
}

func (noopService) SendCustom(ctx context.Context, to, subject, content string) error {
	return nil
}
