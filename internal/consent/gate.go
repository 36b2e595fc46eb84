package consent

import (
	"github.com/shenikar/report_intake/internal/models"
	"github.com/sirupsen/logrus"
)

// Prompt - то, что показывается заявителю перед отправкой
type Prompt struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	AcceptLabel string `json:"acceptLabel"`
	SkipLabel   string `json:"skipLabel"`
}

// DefaultPrompt - текст запроса согласия на оповещение
var DefaultPrompt = Prompt{
	Title:       "Broadcast this report?",
	Message:     "Allow this report to be broadcast to users near the incident location to help find the missing person.",
	AcceptLabel: "Broadcast",
	SkipLabel:   "Skip",
}

// Gate блокирует отправку, пока не принято решение о согласии.
// Может вызываться многократно, действует последнее решение.
type Gate struct {
	prompt Prompt
	logger *logrus.Logger
}

func NewGate(prompt Prompt, logger *logrus.Logger) *Gate {
	return &Gate{
		prompt: prompt,
		logger: logger,
	}
}

// RequestConsent возвращает запрос решения
func (g *Gate) RequestConsent() Prompt {
	return g.prompt
}

// Decide записывает решение в копию черновика. "Пропустить" равнозначно false.
func (g *Gate) Decide(d *models.ReportDraft, consent bool) *models.ReportDraft {
	out := d.Clone()
	out.BroadcastConsent = &consent
	g.logger.WithFields(logrus.Fields{
		"service":  "consent",
		"method":   "Decide",
		"draft_id": d.ID,
		"consent":  consent,
	}).Info("Broadcast consent recorded")
	return out
}

// Require возвращает ErrConsentRequired, пока решение не принято
func (g *Gate) Require(d *models.ReportDraft) error {
	if d == nil || d.BroadcastConsent == nil {
		return models.ErrConsentRequired
	}
	return nil
}
