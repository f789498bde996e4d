package i18n

var en = Dict{
	Lang: LangEN,
	Common: CommonStrings{
		Brand:          "DermaConnect",
		Online:         "Online",
		Offline:        "Offline",
		GenericError:   "Something went wrong. Please try again.",
		GoOnlinePrompt: "Go online to view and accept pending requests.",
	},
	Landing: LandingStrings{
		HeroEyebrow:  "Dermatology, reimagined",
		HeroTitle:    "Expert skin care without the wait.",
		HeroSubtitle: "DermaConnect pairs you with world-class dermatologists for rapid answers, personalized treatment plans, and ongoing support whenever and wherever you need it.",
		Primary:      "Get care now",
		Secondary:    "I'm a dermatologist",
		Stats: []string{
			"< 2 hrs average response",
			"97% patient satisfaction",
			"Secure & HIPAA-ready",
		},
		Steps: []Step{
			{Label: "Share your concern", Detail: "Upload clear photos and describe symptoms. No appointments required."},
			{Label: "Get matched instantly", Detail: "Routing pairs you with the right specialist based on condition, language, and urgency."},
			{Label: "Receive a tailored plan", Detail: "Clear diagnosis, treatment roadmap, and prescriptions when appropriate."},
			{Label: "Track progress", Detail: "Follow-ups, reminders, and photo comparisons keep your skin improving."},
		},
	},
	Auth: AuthStrings{
		LoginTitle:    "Sign in",
		LoginSubtitle: "Enter your email and password",
		EmailLabel:    "Email",
		Submit:        "Sign in",
	},
	Patient: PatientStrings{
		Title:           "Patient dashboard",
		Request:         "Request consultation",
		Cancel:          "Cancel consultation",
		Recent:          "Recent consultations",
		NoConsultations: "You have no consultations yet.",
		NotAssigned:     "Not assigned",
	},
	Doctor: DoctorStrings{
		Title:             "Doctor workspace",
		Incoming:          "Incoming requests",
		MyConsultations:   "My consultations",
		Accept:            "Accept request",
		MarkCompleted:     "Mark completed",
		Release:           "Release to queue",
		SaveNotes:         "Save notes",
		NoPending:         "No pending requests.",
		OfflineNotice:     "You are offline; go online to accept new consultations.",
		SpecialtyRequired: "Set your specialty before going online.",
	},
}
