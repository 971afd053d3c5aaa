package handler

import "brixia-rugby/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth             *AuthHandler
	User             *UserHandler
	Category         *CategoryHandler
	TrainingLocation *TrainingLocationHandler
	Player           *PlayerHandler
	Staff            *StaffHandler
	Session          *SessionHandler
	Event            *EventHandler
	Attendance       *AttendanceHandler
	Injury           *InjuryHandler
	Note             *NoteHandler
	Export           *ExportHandler
}

// NewHandler wires handlers to services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:             NewAuthHandler(svc.Auth),
		User:             NewUserHandler(svc.User),
		Category:         NewCategoryHandler(svc.Category),
		TrainingLocation: NewTrainingLocationHandler(svc.TrainingLocation),
		Player:           NewPlayerHandler(svc.Player),
		Staff:            NewStaffHandler(svc.Staff),
		Session:          NewSessionHandler(svc.Session),
		Event:            NewEventHandler(svc.Event),
		Attendance:       NewAttendanceHandler(svc.Attendance),
		Injury:           NewInjuryHandler(svc.Injury),
		Note:             NewNoteHandler(svc.Note),
		Export:           NewExportHandler(svc.Export),
	}
}
