package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lodestone/internal/app/backend"
	"lodestone/internal/app/dump"
	"lodestone/internal/app/errors"
	"lodestone/internal/app/gamelog"
	"lodestone/internal/app/session"
	"lodestone/internal/app/tail"
	"lodestone/internal/app/ui"
	"lodestone/internal/config"
	"lodestone/internal/config/logger"
)

//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli

// CLI defines the interface for cli operations
type CLI interface {
	Execute(args []string) (int, error)
}

// cli dispatches parsed commands to the viewer, the dumper or the plain
// informational outputs
type cli struct {
	cfg      *config.Config
	client   backend.Client
	session  *session.Session
	probe    session.Probe
	tails    *tail.Factory
	uiRunner ui.Runner
	dumper   dump.Dumper
	log      logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	client backend.Client,
	sess *session.Session,
	probe session.Probe,
	tails *tail.Factory,
	uiRunner ui.Runner,
	dumper dump.Dumper,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:      cfg,
		client:   client,
		session:  sess,
		probe:    probe,
		tails:    tails,
		uiRunner: uiRunner,
		dumper:   dumper,
		log:      log.WithComponent("CLI"),
	}
}

// Execute parses the arguments, runs the selected command and returns the
// process exit code
func (c *cli) Execute(args []string) (int, error) {
	opts, err := Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorText.Render("Error:"), err)

		return 1, err
	}

	if err := c.run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorText.Render("Error:"), err)

		return 1, err
	}

	return 0, nil
}

func (c *cli) run(ctx context.Context, opts *Options) error {
	switch opts.Type {
	case CommandVersion:
		c.printVersion()

		return nil
	case CommandList:
		return c.runList()
	case CommandView:
		return c.runView(ctx, opts)
	case CommandAttach:
		return c.runAttach(ctx, opts)
	default:
		c.printHelp()

		return nil
	}
}

// runView shows a log file on disk, optionally following appended lines
func (c *cli) runView(ctx context.Context, opts *Options) error {
	if !opts.Follow {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return fmt.Errorf("%w: %s", errors.ErrFailedToOpenLog, opts.Path)
		}

		lines := gamelog.ParseContent(string(data))

		if opts.NoUI {
			return c.dumper.Run(ctx, os.Stdout, opts.Path, lines, nil)
		}

		return c.uiRunner.Run(ctx, ui.Options{Title: opts.Path, Initial: lines})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	follower := c.tails.Follow(opts.Path)
	if err := follower.Start(ctx); err != nil {
		return err
	}
	defer follower.Close()

	// The follower emits the existing content as its first chunk, so the
	// whole file flows through one stateful parser and inheritance works
	// across the initial read and later appends.
	parser := gamelog.NewParser()
	updates := make(chan []gamelog.Line, 16)

	go func() {
		defer close(updates)

		for chunk := range follower.Chunks() {
			if lines := parser.Parse(chunk); len(lines) > 0 {
				updates <- lines
			}
		}
	}()

	if opts.NoUI {
		return c.dumper.Run(ctx, os.Stdout, opts.Path, nil, updates)
	}

	return c.uiRunner.Run(ctx, ui.Options{Title: opts.Path, Tailing: true, Updates: updates})
}

// runAttach views an instance's log through the launcher backend, tailing
// it live when the game process is running
func (c *cli) runAttach(ctx context.Context, opts *Options) error {
	socketPath, err := backend.FindSocket(c.cfg.Backend.SocketDir, opts.Instance)
	if err != nil {
		return err
	}

	name := opts.Instance
	if name == "" {
		name = instanceFromSocket(socketPath)
	}

	if err := c.client.Connect(socketPath); err != nil {
		return err
	}
	defer c.client.Close()

	inst := c.resolveInstance(name)

	updates := make(chan []gamelog.Line, c.cfg.Backend.EventBuffer)
	c.session.SetSink(func(lines []gamelog.Line) {
		// Dropping beats deadlocking the session consumer once the viewer
		// has gone away
		select {
		case updates <- lines:
		default:
			c.log.Debug().Int("lines", len(lines)).Msg("Viewer stalled, dropping chunk")
		}
	})

	initial, tailing, err := c.session.Open(ctx, inst)
	if err != nil {
		return err
	}
	defer func() { _ = c.session.Close(context.Background()) }()

	var updateCh <-chan []gamelog.Line
	if tailing {
		updateCh = updates
	}

	if opts.NoUI {
		return c.dumper.Run(ctx, os.Stdout, inst.Name, initial, updateCh)
	}

	return c.uiRunner.Run(ctx, ui.Options{
		Title:   inst.Name,
		Tailing: tailing,
		Initial: initial,
		Updates: updateCh,
		Export:  c.session.Export,
	})
}

// resolveInstance looks the name up in the registry; an unregistered
// instance still works through the backend, just without a local directory
func (c *cli) resolveInstance(name string) session.Instance {
	instances, err := session.LoadInstances(c.cfg.Instances.Path)
	if err != nil {
		c.log.Warn().Err(err).Msg("Ignoring unreadable instances registry")

		return session.Instance{Name: name}
	}

	inst, err := session.LookupInstance(instances, name)
	if err != nil {
		return session.Instance{Name: name}
	}

	return inst
}

// runList prints the registered instances, their liveness and their
// discovered log files
func (c *cli) runList() error {
	instances, err := session.LoadInstances(c.cfg.Instances.Path)
	if err != nil {
		return err
	}

	if len(instances) == 0 {
		fmt.Printf("%s\n", mutedText.Render("No instances registered in "+c.cfg.Instances.Path))

		return nil
	}

	matcher, err := c.tails.Matcher()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(instances))
	for name := range instances {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		inst := instances[name]

		status := statusStopped.Render("stopped")
		if c.probe.Alive(inst) {
			status = statusRunning.Render("running")
		}

		fmt.Printf("%s %s\n", commandName.Render(name), status)

		logs, err := tail.Discover(inst.Dir, matcher)
		if err != nil {
			fmt.Printf("  %s\n", mutedText.Render("(unreadable: "+inst.Dir+")"))

			continue
		}

		for _, logFile := range logs {
			fmt.Printf("  %s\n", bodyText.Render(logFile))
		}
	}

	return nil
}

// printVersion displays version information
func (c *cli) printVersion() {
	fmt.Printf("\n%s\n\n", renderTitle())
}

// printHelp prints formatted help information
func (c *cli) printHelp() {
	fmt.Printf("\n%s\n\n", renderTitle())

	fmt.Printf("%s\n", sectionHeader.Render("USAGE"))
	fmt.Printf("  %s %s\n", config.AppName, mutedText.Render("[command] [options]"))

	fmt.Printf("%s\n", sectionHeader.Render("COMMANDS"))
	fmt.Printf("  %-24s %s\n", commandName.Render("view <file>"), mutedText.Render("View a log file on disk"))
	fmt.Printf("  %-24s %s\n", commandName.Render("attach [instance]"), mutedText.Render("Attach to an instance via the launcher backend"))
	fmt.Printf("  %-24s %s\n", commandName.Render("list"), mutedText.Render("List registered instances and their log files"))
	fmt.Printf("  %-24s %s\n", commandName.Render("version"), mutedText.Render("Show version information"))

	fmt.Printf("%s\n", sectionHeader.Render("OPTIONS"))
	fmt.Printf("  %-24s %s\n", commandName.Render("--no-ui"), mutedText.Render("Stream to stdout instead of the TUI"))
	fmt.Printf("  %-24s %s\n", commandName.Render("-f, --follow"), mutedText.Render("Keep following a viewed file"))

	fmt.Printf("%s\n", sectionHeader.Render("EXAMPLES"))
	fmt.Printf("  %s %s\n", config.AppName, commandName.Render("view logs/latest.log --follow"))
	fmt.Printf("  %s %s\n", config.AppName, commandName.Render("attach fabric-1.21"))
	fmt.Printf("  %s %s\n\n", config.AppName, commandName.Render("view crash.txt --no-ui"))
}

// instanceFromSocket recovers the instance name from a socket path
func instanceFromSocket(socketPath string) string {
	base := filepath.Base(socketPath)

	return strings.TrimSuffix(strings.TrimPrefix(base, config.SocketPrefix), config.SocketSuffix)
}
