// Command mailmerge renders a document template against a tabular data file
// and dispatches one personalized email per row.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dmitrymomot/mailmerge/pkg/config"
	"github.com/dmitrymomot/mailmerge/pkg/dataset"
	"github.com/dmitrymomot/mailmerge/pkg/dispatch"
	"github.com/dmitrymomot/mailmerge/pkg/logger"
	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/resend"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/smtp"
	"github.com/dmitrymomot/mailmerge/pkg/merge"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

func main() {
	var (
		templatePath = flag.String("template", "", "path to the message template (.docx or .md)")
		dataPath     = flag.String("data", "", "path to the recipient data (.xlsx, .xlsm or .csv)")
		subject      = flag.String("subject", "", "message subject, may contain {placeholders}")
		interval     = flag.Duration("interval", -1, "wait between messages (default from SEND_INTERVAL)")
		previewRow   = flag.Int("preview", -1, "render the given zero-based row to stdout and exit")
		selfTest     = flag.Bool("selftest", false, "send a test message to the sender address and exit")
		provider     = flag.String("provider", "smtp", "delivery provider: smtp or resend")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration:", err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(logger.SentryConfig{
		DSN:         cfg.SentryDSN,
		Environment: "production",
	}, jobIDExtractor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := options{
		templatePath: *templatePath,
		dataPath:     *dataPath,
		subject:      *subject,
		interval:     *interval,
		previewRow:   *previewRow,
		selfTest:     *selfTest,
		provider:     *provider,
	}
	if err := run(ctx, cfg, log, opts); err != nil {
		log.Error("mailmerge failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type options struct {
	templatePath string
	dataPath     string
	subject      string
	interval     time.Duration
	previewRow   int
	selfTest     bool
	provider     string
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger, opts options) error {
	sender, err := newSender(cfg, opts.provider)
	if err != nil {
		return err
	}

	if opts.selfTest {
		st, ok := sender.(interface{ SelfTest(context.Context) error })
		if !ok {
			return fmt.Errorf("provider %s does not support self-test", opts.provider)
		}
		if err := st.SelfTest(ctx); err != nil {
			return fmt.Errorf("self-test: %w", err)
		}
		log.Info("self-test message sent", slog.String("to", cfg.SenderEmail))
		return nil
	}

	if opts.templatePath == "" || opts.dataPath == "" {
		return errors.New("both -template and -data are required")
	}

	tpl, err := loadTemplate(opts.templatePath)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}

	subject := opts.subject
	if subject == "" {
		subject = tpl.Subject
	}
	if subject == "" {
		return errors.New("subject required: pass -subject or set it in the template frontmatter")
	}

	ds, err := dataset.Load(opts.dataPath)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	roles := merge.Match(tpl.Placeholders, ds.Columns)
	log.Info("columns matched",
		slog.String("name_column", roles.NameColumn),
		slog.String("address_column", roles.AddressColumn),
		slog.Int("matched", len(roles.Matched)),
	)
	for _, name := range roles.Unmatched {
		log.Warn("placeholder has no matching column", slog.String("placeholder", name))
	}

	if opts.previewRow >= 0 {
		if opts.previewRow >= len(ds.Rows) {
			return fmt.Errorf("preview row %d out of range: data has %d rows", opts.previewRow, len(ds.Rows))
		}
		msg := merge.Preview(tpl, ds.Rows[opts.previewRow], roles, subject)
		fmt.Printf("To: %s <%s>\nSubject: %s\n\n%s\n", msg.RecipientName, msg.RecipientAddress, msg.Subject, msg.BodyHTML)
		return nil
	}

	if roles.AddressColumn == "" {
		return errors.New("no address column found in the data file")
	}

	interval := cfg.SendInterval
	if opts.interval >= 0 {
		interval = opts.interval
	}

	ctrl := dispatch.NewController(sender, log)
	events, err := ctrl.Start(ctx, dispatch.Job{
		Rows:     ds.Rows,
		Template: tpl,
		Roles:    roles,
		Subject:  subject,
		Interval: interval,
	})
	if err != nil {
		return fmt.Errorf("start dispatch: %w", err)
	}

	for ev := range events {
		switch ev.Kind {
		case dispatch.EventProgress:
			log.Info("message sent",
				slog.String("recipient", ev.Recipient),
				slog.Int("row", ev.Index),
				slog.String("progress", fmt.Sprintf("%.0f%%", ev.Fraction*100)),
			)
		case dispatch.EventError:
			return fmt.Errorf("dispatch aborted at row %d: %w", ev.Index, ev.Err)
		case dispatch.EventFinished:
			if ev.Cancelled {
				log.Info("dispatch cancelled", slog.Int("sent", ev.Sent), slog.Int("total", len(ds.Rows)))
			} else {
				log.Info("dispatch completed", slog.Int("sent", ev.Sent))
			}
		}
	}
	return nil
}

func loadTemplate(path string) (*template.Template, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return template.ParseMarkdownFile(path)
	default:
		return template.ParseFile(path)
	}
}

func newSender(cfg *config.Config, provider string) (mailer.Sender, error) {
	switch provider {
	case "smtp":
		return smtp.New(smtp.Config{
			Host:        cfg.SMTPServer,
			Port:        cfg.SMTPPort,
			SenderName:  cfg.SenderName,
			SenderEmail: cfg.SenderEmail,
			Password:    cfg.SMTPPassword,
			UseSSL:      cfg.UseSSL,
		}), nil
	case "resend":
		if cfg.ResendAPIKey == "" {
			return nil, errors.New("resend provider requires RESEND_API_KEY")
		}
		return resend.New(resend.Config{
			APIKey:      cfg.ResendAPIKey,
			SenderEmail: cfg.SenderEmail,
			SenderName:  cfg.SenderName,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

func jobIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := dispatch.JobIDFromContext(ctx); ok {
		return slog.String("job_id", id), true
	}
	return slog.Attr{}, false
}
