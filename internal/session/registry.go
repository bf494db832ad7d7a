package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phr/phr/internal/domain/agenda"
	"github.com/phr/phr/internal/domain/appointment"
	"github.com/phr/phr/internal/domain/catalog"
	"github.com/phr/phr/internal/domain/medication"
	"github.com/phr/phr/internal/domain/prescription"
	"github.com/phr/phr/internal/domain/profile"
	"github.com/phr/phr/internal/domain/symptom"
	"github.com/phr/phr/internal/platform/document"
	"github.com/phr/phr/internal/platform/notification"
)

// Deps are the shared collaborators handed to every new session.
type Deps struct {
	Catalogs  *catalog.Service
	Documents document.Generator
	Templates *notification.TemplateEngine
	Email     notification.EmailSender
	SMS       notification.SMSSender
	Push      notification.PushSender
}

// Registry creates sessions on first sight of a session ID and hands back the
// same session for every later request carrying that ID.
type Registry struct {
	mu       sync.Mutex
	deps     Deps
	sessions map[string]*Session
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps:     deps,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating it if absent. An empty id gets a
// fresh session under a generated ID.
func (r *Registry) Get(id string) *Session {
	if id == "" {
		id = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		return s
	}
	s := r.newSession(id)
	r.sessions[id] = s
	return s
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) newSession(id string) *Session {
	medRepo := medication.NewMemRepo()
	apptRepo := appointment.NewMemRepo()
	symRepo := symptom.NewMemRepo()

	meds := medication.NewService(medRepo)

	return &Session{
		ID:            id,
		CreatedAt:     time.Now().UTC(),
		Medications:   meds,
		Appointments:  appointment.NewService(apptRepo),
		Symptoms:      symptom.NewService(symRepo),
		Agenda:        agenda.NewService(medRepo, apptRepo),
		Prescriptions: prescription.NewService(meds),
		Profile:       profile.NewService(r.deps.Documents),
		Outbox:        notification.NewOutbox(r.deps.Email, r.deps.SMS, r.deps.Push, r.deps.Templates),
		catalogs:      r.deps.Catalogs,
	}
}
