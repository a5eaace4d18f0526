package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Ilia01/ticketdesk/internal/actionlog"
	"github.com/Ilia01/ticketdesk/internal/clock"
	"github.com/Ilia01/ticketdesk/internal/config"
	"github.com/Ilia01/ticketdesk/internal/export"
	"github.com/Ilia01/ticketdesk/internal/models"
	"github.com/Ilia01/ticketdesk/internal/observability"
	"github.com/Ilia01/ticketdesk/internal/tracker"
	"github.com/Ilia01/ticketdesk/internal/utils"
)

var sessionClock = clock.NewSystem()

func handleSession(in io.Reader, out io.Writer) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(settings.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	actions := actionlog.New(sessionClock)
	logger = logger.With(zap.String("session", actions.SessionID()))
	logger.Info("session started", zap.String("export_dir", settings.Export.Dir))

	manager := tracker.NewManager(
		tracker.WithVocabulary(settings.Vocabulary),
		tracker.WithLogger(logger),
	)

	s := newSession(manager, actions, utils.NewPrompter(in, out), out, settings.Export.Dir, logger)
	return s.Run()
}

func handleInspect(out io.Writer, path string, jsonOutput bool) error {
	tickets, err := export.Read(path)
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := export.Encode(tickets)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	fmt.Fprintln(out, utils.Cyan(utils.Bold(fmt.Sprintf("Tickets in %s", path))))
	fmt.Fprintln(out)

	if len(tickets) == 0 {
		fmt.Fprintln(out, utils.Dim("  No tickets in file"))
		return nil
	}

	fmt.Fprintf(out, "  %d tickets found\n\n", len(tickets))
	printTicketList(out, tickets, models.DefaultVocabulary())
	return nil
}

func handleConfigShow(out io.Writer) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	printConfig(out, settings)
	return nil
}

func handleConfigSet(out io.Writer, key, value string) error {
	settings, err := config.Load()
	if errors.Is(err, config.ErrConfigNotFound) {
		settings = config.Default()
	} else if err != nil {
		return err
	}
	if err := updateConfigValue(settings, key, value); err != nil {
		return err
	}
	if err := settings.Save(); err != nil {
		return err
	}
	fmt.Fprintln(out, utils.Green(utils.Bold(fmt.Sprintf("✓ Updated %s to: %s", key, value))))
	return nil
}

func handleConfigPath(out io.Writer) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, path)
	return nil
}

func loadSettings() (*config.Settings, error) {
	settings, err := config.LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return settings, nil
}

func printConfig(out io.Writer, settings *config.Settings) {
	fmt.Fprintln(out, utils.Cyan(utils.Bold("Current Configuration")))
	fmt.Fprintln(out)

	fmt.Fprintln(out, utils.Bold("[export]"))
	fmt.Fprintf(out, "  %s %s\n", utils.Dim("dir:"), utils.BrightWhite(settings.Export.Dir))

	fmt.Fprintln(out)
	fmt.Fprintln(out, utils.Bold("[log]"))
	fmt.Fprintf(out, "  %s %s\n", utils.Dim("level:"), utils.BrightWhite(settings.Log.Level))
	if settings.Log.File != "" {
		fmt.Fprintf(out, "  %s %s\n", utils.Dim("file:"), utils.BrightWhite(settings.Log.File))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, utils.Bold("[vocabulary]"))
	fmt.Fprintf(out, "  %s %s\n", utils.Dim("open_status:"), utils.BrightWhite(settings.Vocabulary.OpenStatus))
	fmt.Fprintf(out, "  %s %s\n", utils.Dim("closed_status:"), utils.BrightWhite(settings.Vocabulary.ClosedStatus))
	fmt.Fprintf(out, "  %s %s\n", utils.Dim("default_priority:"), utils.BrightWhite(settings.Vocabulary.DefaultPriority))
	fmt.Fprintf(out, "  %s %s\n", utils.Dim("priorities:"), utils.BrightWhite(strings.Join(settings.Vocabulary.Priorities, ", ")))
}

func updateConfigValue(settings *config.Settings, key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return errors.New("invalid key format. Use section.field (e.g., export.dir)")
	}

	section, field := parts[0], parts[1]
	switch section {
	case "export":
		switch field {
		case "dir":
			settings.Export.Dir = value
		default:
			return fmt.Errorf("unknown export field: %s", field)
		}
	case "log":
		switch field {
		case "level":
			settings.Log.Level = value
		case "file":
			settings.Log.File = value
		default:
			return fmt.Errorf("unknown log field: %s", field)
		}
	case "vocabulary":
		switch field {
		case "open_status":
			settings.Vocabulary.OpenStatus = value
		case "closed_status":
			settings.Vocabulary.ClosedStatus = value
		case "default_priority":
			settings.Vocabulary.DefaultPriority = value
		default:
			return fmt.Errorf("unknown vocabulary field: %s", field)
		}
	default:
		return fmt.Errorf("unknown configuration section: %s", section)
	}

	return nil
}

func printTicketList(out io.Writer, tickets []models.Ticket, vocab models.Vocabulary) {
	for _, ticket := range tickets {
		fmt.Fprintf(out, "  %s %s\n", colorStatus(ticket.Status, vocab), ticket)
	}
}

func colorStatus(status string, vocab models.Vocabulary) string {
	switch status {
	case vocab.OpenStatus:
		return utils.Green("●")
	case vocab.ClosedStatus:
		return utils.Dim("○")
	default:
		return utils.Yellow("◐")
	}
}
