package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Ilia01/ticketdesk/internal/actionlog"
	"github.com/Ilia01/ticketdesk/internal/tracker"
	"github.com/Ilia01/ticketdesk/internal/utils"
)

type menuItem struct {
	key   string
	label string
	run   func() error
}

// session is one interactive run of the support desk menu. Menu actions return
// an error only when reading input fails; ticket errors are reported and the
// loop continues.
type session struct {
	manager   *tracker.Manager
	actions   *actionlog.Log
	prompt    *utils.Prompter
	out       io.Writer
	exportDir string
	logger    *zap.Logger
	menu      []menuItem
}

func newSession(manager *tracker.Manager, actions *actionlog.Log, prompt *utils.Prompter, out io.Writer, exportDir string, logger *zap.Logger) *session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exportDir == "" {
		exportDir = "."
	}
	s := &session{
		manager:   manager,
		actions:   actions,
		prompt:    prompt,
		out:       out,
		exportDir: exportDir,
		logger:    logger,
	}
	s.menu = []menuItem{
		{"1", "Create a new ticket", s.createTicket},
		{"2", "Modify a ticket", s.modifyTicket},
		{"3", "Delete a ticket", s.deleteTicket},
		{"4", "List all tickets", s.listTickets},
		{"5", "Assign an agent to a ticket", s.assignAgent},
		{"6", "Close a ticket", s.closeTicket},
		{"7", "Search tickets by customer", s.searchByCustomer},
		{"8", "Search tickets by status", s.searchByStatus},
		{"9", "Export tickets to JSON", s.exportTickets},
		{"10", "Add a comment to a ticket", s.addComment},
		{"11", "View ticket comments", s.viewComments},
	}
	return s
}

func (s *session) Run() error {
	for {
		s.printMenu()
		option, err := s.prompt.Prompt("Choose an option")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			break
		}
		if err != nil {
			return err
		}

		if option == "0" {
			fmt.Fprintln(s.out, utils.Dim("Exiting..."))
			break
		}

		item, ok := s.lookup(option)
		if !ok {
			fmt.Fprintln(s.out, utils.Yellow("Invalid option. Please enter one of the listed numbers."))
			continue
		}
		if err := item.run(); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				break
			}
			return err
		}
	}

	s.logger.Info("session finished", zap.Int("actions", s.actions.Len()))
	_, err := s.actions.WriteTo(s.out)
	return err
}

func (s *session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, utils.Cyan(utils.Bold("--- Ticket Menu ---")))
	for _, item := range s.menu {
		fmt.Fprintf(s.out, "%s. %s\n", item.key, item.label)
	}
	fmt.Fprintln(s.out, "0. Exit")
}

func (s *session) lookup(option string) (menuItem, bool) {
	for _, item := range s.menu {
		if item.key == option {
			return item, true
		}
	}
	return menuItem{}, false
}

func (s *session) createTicket() error {
	customer, err := s.prompt.Prompt("Customer name")
	if err != nil {
		return err
	}
	subject, err := s.prompt.Prompt("Ticket subject")
	if err != nil {
		return err
	}
	vocab := s.manager.Vocabulary()
	priority, err := s.prompt.PromptWithDefault(
		fmt.Sprintf("Priority (%s)", strings.Join(vocab.Priorities, "/")), vocab.DefaultPriority)
	if err != nil {
		return err
	}

	ticket := s.manager.Create(customer, subject, priority)
	s.succeed(fmt.Sprintf("Ticket %d created.", ticket.ID))
	s.actions.Record("New ticket created for %s", customer)
	return nil
}

func (s *session) modifyTicket() error {
	id, token, err := s.askID("ID of the ticket to modify")
	if err != nil {
		return err
	}
	s.actions.Record("Modify ticket %s", token)
	if id == 0 {
		return nil
	}
	if _, err := s.manager.FindByID(id); err != nil {
		s.fail(err)
		return nil
	}

	fmt.Fprintln(s.out, utils.Cyan(fmt.Sprintf("Modifying ticket %d (leave blank to keep the current value):", id)))
	var update tracker.Update
	fields := []struct {
		label string
		dst   *string
	}{
		{"New customer name", &update.Customer},
		{"New subject", &update.Subject},
		{"New priority", &update.Priority},
		{"New status", &update.Status},
		{"New assigned agent", &update.AssignedAgent},
	}
	for _, field := range fields {
		value, err := s.prompt.Prompt(field.label)
		if err != nil {
			return err
		}
		*field.dst = value
	}

	if _, err := s.manager.Modify(id, update); err != nil {
		s.fail(err)
		return nil
	}
	s.succeed(fmt.Sprintf("Ticket %d modified.", id))
	return nil
}

func (s *session) deleteTicket() error {
	id, token, err := s.askID("ID of the ticket to delete")
	if err != nil {
		return err
	}
	s.actions.Record("Delete ticket %s", token)
	if id == 0 {
		return nil
	}
	if err := s.manager.Delete(id); err != nil {
		s.fail(err)
		return nil
	}
	s.succeed(fmt.Sprintf("Ticket %d deleted.", id))
	return nil
}

func (s *session) listTickets() error {
	tickets := s.manager.List()
	fmt.Fprintln(s.out, utils.Cyan(utils.Bold("All tickets")))
	if len(tickets) == 0 {
		fmt.Fprintln(s.out, utils.Dim("  No tickets yet"))
	}
	printTicketList(s.out, tickets, s.manager.Vocabulary())
	s.actions.Record("Listed all tickets")
	return nil
}

func (s *session) assignAgent() error {
	id, token, err := s.askID("ID of the ticket to assign")
	if err != nil {
		return err
	}
	agent, err := s.prompt.Prompt("Agent name")
	if err != nil {
		return err
	}
	s.actions.Record("Assign agent %s to ticket %s", agent, token)
	if id == 0 {
		return nil
	}
	if _, err := s.manager.AssignAgent(id, agent); err != nil {
		s.fail(err)
		return nil
	}
	s.succeed(fmt.Sprintf("Agent %s assigned to ticket %d.", agent, id))
	return nil
}

func (s *session) closeTicket() error {
	id, token, err := s.askID("ID of the ticket to close")
	if err != nil {
		return err
	}
	s.actions.Record("Close ticket %s", token)
	if id == 0 {
		return nil
	}
	if _, err := s.manager.Close(id); err != nil {
		s.fail(err)
		return nil
	}
	s.succeed(fmt.Sprintf("Ticket %d closed.", id))
	return nil
}

func (s *session) searchByCustomer() error {
	customer, err := s.prompt.Prompt("Customer name")
	if err != nil {
		return err
	}
	s.actions.Record("Search tickets by customer: %s", customer)
	tickets, err := s.manager.FindByCustomer(customer)
	if err != nil {
		s.fail(err)
		return nil
	}
	fmt.Fprintln(s.out, utils.Cyan(utils.Bold(fmt.Sprintf("Tickets for customer %s", customer))))
	printTicketList(s.out, tickets, s.manager.Vocabulary())
	return nil
}

func (s *session) searchByStatus() error {
	vocab := s.manager.Vocabulary()
	status, err := s.prompt.Prompt(fmt.Sprintf("Status (%s/%s)", vocab.OpenStatus, vocab.ClosedStatus))
	if err != nil {
		return err
	}
	s.actions.Record("Search tickets by status: %s", status)
	tickets, err := s.manager.FindByStatus(status)
	if err != nil {
		s.fail(err)
		return nil
	}
	fmt.Fprintln(s.out, utils.Cyan(utils.Bold(fmt.Sprintf("Tickets with status %s", status))))
	printTicketList(s.out, tickets, vocab)
	return nil
}

func (s *session) exportTickets() error {
	filename, err := s.prompt.Prompt("File name for the JSON export")
	if err != nil {
		return err
	}
	dir, err := s.prompt.PromptWithDefault("Directory", s.exportDir)
	if err != nil {
		return err
	}
	s.actions.Record("Export tickets to JSON: %s", filename)
	if strings.TrimSpace(filename) == "" {
		fmt.Fprintln(s.out, utils.Yellow("A file name is required."))
		return nil
	}

	path, err := s.manager.Export(filename, dir)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.succeed(fmt.Sprintf("Tickets exported to %s.", path))
	return nil
}

func (s *session) addComment() error {
	id, token, err := s.askID("ID of the ticket to comment on")
	if err != nil {
		return err
	}
	text, err := s.prompt.Prompt("Comment")
	if err != nil {
		return err
	}
	s.actions.Record("Comment on ticket %s", token)
	if id == 0 {
		return nil
	}
	if err := s.manager.AddComment(id, text); err != nil {
		s.fail(err)
		return nil
	}
	s.succeed(fmt.Sprintf("Comment added to ticket %d.", id))
	return nil
}

func (s *session) viewComments() error {
	id, token, err := s.askID("ID of the ticket")
	if err != nil {
		return err
	}
	s.actions.Record("View comments of ticket %s", token)
	if id == 0 {
		return nil
	}
	comments, err := s.manager.Comments(id)
	if err != nil {
		s.fail(err)
		return nil
	}
	if len(comments) == 0 {
		fmt.Fprintln(s.out, utils.Dim("No comments for this ticket."))
		return nil
	}
	fmt.Fprintln(s.out, utils.Bold("Comments:"))
	for _, comment := range comments {
		fmt.Fprintf(s.out, "  - %s\n", comment)
	}
	return nil
}

// askID prompts for a ticket id. An unparseable token is reported here and
// yields id 0 with a nil error.
func (s *session) askID(message string) (int, string, error) {
	token, err := s.prompt.Prompt(message)
	if err != nil {
		return 0, "", err
	}
	id, err := tracker.ParseID(token)
	if err != nil {
		s.fail(err)
		return 0, token, nil
	}
	return id, token, nil
}

func (s *session) succeed(message string) {
	fmt.Fprintln(s.out, utils.Green("✓ "+message))
}

func (s *session) fail(err error) {
	s.logger.Debug("operation failed", zap.Error(err))
	switch {
	case errors.Is(err, tracker.ErrInvalidID):
		fmt.Fprintln(s.out, utils.Red("✗ The ticket ID must be a positive number."))
	case errors.Is(err, tracker.ErrNoMatches):
		fmt.Fprintln(s.out, utils.Yellow(err.Error()))
	default:
		fmt.Fprintln(s.out, utils.Red("✗ "+err.Error()))
	}
}
