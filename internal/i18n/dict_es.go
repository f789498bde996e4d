package i18n

var es = Dict{
	Lang: LangES,
	Common: CommonStrings{
		Brand:          "DermaConnect",
		Online:         "En línea",
		Offline:        "Desconectado",
		GenericError:   "Algo salió mal. Inténtalo de nuevo.",
		GoOnlinePrompt: "Ponte en línea para ver y aceptar solicitudes pendientes.",
	},
	Landing: LandingStrings{
		HeroEyebrow:  "Dermatología, reinventada",
		HeroTitle:    "Cuidado experto de la piel sin esperas.",
		HeroSubtitle: "DermaConnect te conecta con dermatólogos de primer nivel para respuestas rápidas, planes de tratamiento personalizados y acompañamiento continuo.",
		Primary:      "Obtener atención",
		Secondary:    "Soy dermatólogo",
		Stats: []string{
			"< 2 h de respuesta media",
			"97% de satisfacción",
			"Seguro y listo para HIPAA",
		},
		Steps: []Step{
			{Label: "Comparte tu consulta", Detail: "Sube fotos claras y describe los síntomas. Sin citas previas."},
			{Label: "Emparejamiento instantáneo", Detail: "Te conectamos con el especialista adecuado según condición, idioma y urgencia."},
			{Label: "Recibe un plan a medida", Detail: "Diagnóstico claro, hoja de ruta de tratamiento y recetas cuando corresponda."},
			{Label: "Sigue tu progreso", Detail: "Seguimientos, recordatorios y comparación de fotos para mejorar tu piel."},
		},
	},
	Auth: AuthStrings{
		LoginTitle:    "Ingresar",
		LoginSubtitle: "Introduce tu correo y contraseña",
		EmailLabel:    "Correo",
		Submit:        "Ingresar",
	},
	Patient: PatientStrings{
		Title:           "Panel de paciente",
		Request:         "Solicitar consulta",
		Cancel:          "Cancelar consulta",
		Recent:          "Consultas recientes",
		NoConsultations: "Aún no tienes consultas.",
		NotAssigned:     "Sin asignar",
	},
	Doctor: DoctorStrings{
		Title:             "Panel médico",
		Incoming:          "Solicitudes entrantes",
		MyConsultations:   "Mis consultas",
		Accept:            "Aceptar solicitud",
		MarkCompleted:     "Marcar completada",
		Release:           "Liberar a la cola",
		SaveNotes:         "Guardar notas",
		NoPending:         "Sin solicitudes pendientes.",
		OfflineNotice:     "Estás desconectado; ponte en línea para aceptar nuevas consultas.",
		SpecialtyRequired: "Define tu especialidad antes de conectarte.",
	},
}
