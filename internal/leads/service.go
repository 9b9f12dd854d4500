package leads

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/isamardev/graphify/internal/content"
	"github.com/isamardev/graphify/internal/store"
)

var ErrNotFound = errors.New("lead not found")

type Notifier interface {
	SendContactNotification(ctx context.Context, contact Contact) (string, error)
	SendQuoteNotification(ctx context.Context, quote Quote) (string, error)
}

// Service owns lead intake and admin reads. resolveImage expands stored
// reference paths into fetchable URLs on the way out.
type Service struct {
	repo         Repository
	location     *time.Location
	notifier     Notifier
	resolveImage func(string) string
}

func NewService(repo Repository, location *time.Location, notifier Notifier, resolveImage func(string) string) *Service {
	if resolveImage == nil {
		resolveImage = func(s string) string { return s }
	}
	return &Service{
		repo:         repo,
		location:     location,
		notifier:     notifier,
		resolveImage: resolveImage,
	}
}

func (s *Service) CreateContact(ctx context.Context, req CreateContactRequest) (Contact, error) {
	contact := Contact{
		ID:              primitive.NewObjectID().Hex(),
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		BusinessType:    strings.TrimSpace(req.BusinessType),
		ProjectBudget:   strings.TrimSpace(req.ProjectBudget),
		ProjectTimeline: strings.TrimSpace(req.ProjectTimeline),
		ProjectDetail:   strings.TrimSpace(req.ProjectDetail),
		ReferenceFile:   strings.TrimSpace(req.ReferenceFile),
		CreatedAt:       time.Now().In(s.location),
	}
	return s.repo.CreateContact(ctx, contact)
}

func (s *Service) CreateQuote(ctx context.Context, req CreateQuoteRequest) (Quote, error) {
	quote := Quote{
		ID:                 primitive.NewObjectID().Hex(),
		Name:               strings.TrimSpace(req.Name),
		Email:              strings.TrimSpace(req.Email),
		Phone:              strings.TrimSpace(req.Phone),
		ProjectType:        strings.TrimSpace(req.ProjectType),
		BudgetRange:        strings.TrimSpace(req.BudgetRange),
		PreferredStyle:     strings.TrimSpace(req.PreferredStyle),
		WallDimension:      strings.TrimSpace(req.WallDimension),
		ProjectDeadline:    strings.TrimSpace(req.ProjectDeadline),
		ProjectDescription: strings.TrimSpace(req.ProjectDescription),
		ReferenceImage:     content.FirstReferenceImage(req.ReferenceImage),
		CreatedAt:          time.Now().In(s.location),
	}
	return s.repo.CreateQuote(ctx, quote)
}

func (s *Service) ListContacts(ctx context.Context, limit, offset int64) ([]Contact, int64, error) {
	items, err := s.repo.ListContacts(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountContacts(ctx)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].ReferenceFile = s.resolvePath(items[i].ReferenceFile)
	}
	return items, total, nil
}

func (s *Service) GetContactByID(ctx context.Context, id string) (Contact, error) {
	contact, err := s.repo.GetContactByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Contact{}, mapNotFound(err)
	}
	contact.ReferenceFile = s.resolvePath(contact.ReferenceFile)
	return contact, nil
}

func (s *Service) ListQuotes(ctx context.Context, limit, offset int64) ([]Quote, int64, error) {
	items, err := s.repo.ListQuotes(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountQuotes(ctx)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].ReferenceImage = s.resolvePath(items[i].ReferenceImage)
	}
	return items, total, nil
}

func (s *Service) GetQuoteByID(ctx context.Context, id string) (Quote, error) {
	quote, err := s.repo.GetQuoteByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Quote{}, mapNotFound(err)
	}
	quote.ReferenceImage = s.resolvePath(quote.ReferenceImage)
	return quote, nil
}

func (s *Service) NotifyContact(ctx context.Context, contact Contact) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendContactNotification(ctx, contact)
	return err
}

func (s *Service) NotifyQuote(ctx context.Context, quote Quote) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendQuoteNotification(ctx, quote)
	return err
}

func (s *Service) resolvePath(path string) string {
	if path == "" {
		return ""
	}
	return s.resolveImage(path)
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
