package service

import (
	"github.com/shenikar/report_intake/internal/draft"
	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/submission"
	"github.com/shenikar/report_intake/internal/wizard"
	"github.com/sirupsen/logrus"
)

// SessionDeps - общие для всех заявителей зависимости мастера
type SessionDeps struct {
	Drafts      draft.Repository
	KeyPrefix   string
	Validator   wizard.Validator
	Resolver    wizard.StationResolver
	Consent     wizard.ConsentGate
	ReportAPI   submission.ReportAPI
	Opener      submission.AttachmentOpener
	Attachments wizard.AttachmentRemover
	Addresses   models.AddressDirectory
	Submit      submission.Config
	Logger      *logrus.Logger
}

// NewSessionFactory собирает мастер заявителя. Слот черновика и координатор
// отправки у каждого заявителя свои.
func NewSessionFactory(deps SessionDeps) SessionFactory {
	return func(reporter string) WizardSession {
		return wizard.NewController(reporter, wizard.Deps{
			Validator:   deps.Validator,
			Store:       draft.NewStore(deps.Drafts, draft.SlotFor(deps.KeyPrefix, reporter), deps.Logger),
			Resolver:    deps.Resolver,
			Consent:     deps.Consent,
			Submitter:   submission.NewCoordinator(deps.ReportAPI, deps.Opener, deps.Submit, deps.Logger),
			Attachments: deps.Attachments,
			Addresses:   deps.Addresses,
			Logger:      deps.Logger,
		})
	}
}
