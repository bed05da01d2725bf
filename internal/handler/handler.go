package handler

import (
	"coursefiles/internal/catalog"
	"coursefiles/internal/service"
	"coursefiles/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	catalog    *catalog.Catalog
	sessions   *session.Store
	registry   *service.RegistryService
	logger     *zap.Logger
	contactURL string
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	cat *catalog.Catalog,
	sessions *session.Store,
	registry *service.RegistryService,
	logger *zap.Logger,
	contactURL string,
) *Handler {
	return &Handler{
		bot:        bot,
		catalog:    cat,
		sessions:   sessions,
		registry:   registry,
		logger:     logger,
		contactURL: contactURL,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Callback token prefixes for indexed selections. The index is the item's
// position in the list rendered for this session, nothing more stable.
const (
	prefixSection  = "section"
	prefixSemester = "semester"
	prefixSubject  = "subject"
	prefixFile     = "file"
)

// Fixed back-navigation tokens.
const (
	tokenBackToSections  = "back_to_sections"
	tokenBackToSemesters = "back_to_semesters"
	tokenBackToSubjects  = "back_to_subjects"
)

const (
	msgRootMissing = "❌ The course files folder could not be found. Please contact the developer."
	msgNoSections  = "📂 There are no sections to browse yet."
	msgLoadFailed  = "Could not load this folder. Please try again."
	msgSendFailed  = "Could not send the file. Please try again."
	msgWelcome     = "🌟 Welcome to the course files bot!\n\n📚 Pick a section to start browsing:"
)
