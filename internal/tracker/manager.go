// Package tracker owns the in-memory ticket collection for one session.
//
// Manager assigns ids from a counter that is never decremented, so ids are
// never reused after a delete. Lookups go through the id map; the order slice
// only preserves creation order for listing and export.
//
// Manager is not safe for concurrent use.
package tracker

import (
	"fmt"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/Ilia01/ticketdesk/internal/export"
	"github.com/Ilia01/ticketdesk/internal/models"
)

// Update carries replacement values for Modify. Empty fields keep the current value.
type Update struct {
	Customer      string
	Subject       string
	Priority      string
	Status        string
	AssignedAgent string
}

type Manager struct {
	tickets map[int]*models.Ticket
	order   []int
	nextID  int
	vocab   models.Vocabulary
	logger  *zap.Logger
}

type Option func(*Manager)

func WithVocabulary(v models.Vocabulary) Option {
	return func(m *Manager) { m.vocab = v.WithDefaults() }
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		tickets: make(map[int]*models.Ticket),
		nextID:  1,
		vocab:   models.DefaultVocabulary(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Vocabulary() models.Vocabulary {
	return m.vocab
}

func (m *Manager) Len() int {
	return len(m.order)
}

func (m *Manager) Create(customer, subject, priority string) models.Ticket {
	if priority == "" {
		priority = m.vocab.DefaultPriority
	}
	ticket := &models.Ticket{
		ID:       m.nextID,
		Customer: customer,
		Subject:  subject,
		Priority: priority,
		Status:   m.vocab.OpenStatus,
	}
	m.tickets[ticket.ID] = ticket
	m.order = append(m.order, ticket.ID)
	m.nextID++

	m.logger.Debug("ticket created",
		zap.Int("ticket_id", ticket.ID),
		zap.String("customer", customer),
		zap.String("priority", priority),
	)
	return ticket.Clone()
}

func (m *Manager) FindByID(id int) (models.Ticket, error) {
	ticket, err := m.lookup(id)
	if err != nil {
		return models.Ticket{}, err
	}
	return ticket.Clone(), nil
}

func (m *Manager) Modify(id int, update Update) (models.Ticket, error) {
	ticket, err := m.lookup(id)
	if err != nil {
		return models.Ticket{}, err
	}
	if update.Customer != "" {
		ticket.Customer = update.Customer
	}
	if update.Subject != "" {
		ticket.Subject = update.Subject
	}
	if update.Priority != "" {
		ticket.Priority = update.Priority
	}
	if update.Status != "" {
		ticket.Status = update.Status
	}
	if update.AssignedAgent != "" {
		ticket.AssignedAgent = update.AssignedAgent
	}
	m.logger.Debug("ticket modified", zap.Int("ticket_id", id))
	return ticket.Clone(), nil
}

func (m *Manager) Delete(id int) error {
	if _, err := m.lookup(id); err != nil {
		return err
	}
	delete(m.tickets, id)
	m.order = slices.DeleteFunc(m.order, func(existing int) bool { return existing == id })
	m.logger.Debug("ticket deleted", zap.Int("ticket_id", id))
	return nil
}

// List returns every ticket in creation order.
func (m *Manager) List() []models.Ticket {
	return m.filter(func(*models.Ticket) bool { return true })
}

func (m *Manager) FindByCustomer(customer string) ([]models.Ticket, error) {
	matches := m.filter(func(t *models.Ticket) bool { return t.Customer == customer })
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: customer %q", ErrNoMatches, customer)
	}
	return matches, nil
}

func (m *Manager) FindByStatus(status string) ([]models.Ticket, error) {
	matches := m.filter(func(t *models.Ticket) bool { return t.Status == status })
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: status %q", ErrNoMatches, status)
	}
	return matches, nil
}

func (m *Manager) AssignAgent(id int, agent string) (models.Ticket, error) {
	ticket, err := m.lookup(id)
	if err != nil {
		return models.Ticket{}, err
	}
	ticket.AssignedAgent = agent
	m.logger.Debug("agent assigned", zap.Int("ticket_id", id), zap.String("agent", agent))
	return ticket.Clone(), nil
}

// Close sets the closed status regardless of the current one.
func (m *Manager) Close(id int) (models.Ticket, error) {
	ticket, err := m.lookup(id)
	if err != nil {
		return models.Ticket{}, err
	}
	ticket.Status = m.vocab.ClosedStatus
	m.logger.Debug("ticket closed", zap.Int("ticket_id", id))
	return ticket.Clone(), nil
}

func (m *Manager) AddComment(id int, text string) error {
	ticket, err := m.lookup(id)
	if err != nil {
		return err
	}
	ticket.AddComment(text)
	m.logger.Debug("comment added", zap.Int("ticket_id", id), zap.Int("comments", len(ticket.Comments())))
	return nil
}

func (m *Manager) Comments(id int) ([]string, error) {
	ticket, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return ticket.Comments(), nil
}

// Export writes all tickets to directory/filename, replacing any existing file.
// It returns the full path written.
func (m *Manager) Export(filename, directory string) (string, error) {
	path := filepath.Join(directory, filename)
	if err := export.Write(path, m.List()); err != nil {
		m.logger.Warn("export failed", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("%w: %s: %w", ErrIOFailure, path, err)
	}
	m.logger.Info("tickets exported", zap.String("path", path), zap.Int("count", len(m.order)))
	return path, nil
}

func (m *Manager) lookup(id int) (*models.Ticket, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	ticket, ok := m.tickets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return ticket, nil
}

func (m *Manager) filter(keep func(*models.Ticket) bool) []models.Ticket {
	result := make([]models.Ticket, 0, len(m.order))
	for _, id := range m.order {
		ticket := m.tickets[id]
		if keep(ticket) {
			result = append(result, ticket.Clone())
		}
	}
	return result
}
