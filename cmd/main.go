package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ellenmartin11/newhaven-hangouts/internal/api"
	"github.com/ellenmartin11/newhaven-hangouts/internal/config"
	"github.com/ellenmartin11/newhaven-hangouts/internal/geocode"
	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/ellenmartin11/newhaven-hangouts/internal/render"
	"github.com/ellenmartin11/newhaven-hangouts/internal/service"
	"github.com/ellenmartin11/newhaven-hangouts/pkg/logger"
	"github.com/sirupsen/logrus"
)

const usage = `Usage: hangouts [-config profile.yaml] <command> [flags]

Account:
  login          -email -password [-remember]
  signup         -username -email -password
  logout
  whoami
  reset-password -email
  delete-account [-yes]

Feed:
  feed
  checkin        -lat -lng [-location] [-message] [-duration] [-visibility] [-share id,id]
  coming         -id
  delete         -id [-yes]

Friends:
  friends
  requests
  friend-add     -email
  friend-accept  -id
  friend-reject  -id

Places:
  search         [-query]   (без -query читает запросы построчно из stdin)
  locate         -lat -lng

Push:
  register-push  -token
`

// app связывает конфигурацию, API-клиент и сервисы на время одной команды
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	client  *api.Client
	session *models.Session
	view    *render.FeedView
	form    *service.FormService
	feed    *service.FeedService
	friends *service.FriendService
	geo     *geocode.Client
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	log := logger.New(cfg.LogLevel)

	tokens, err := api.NewTokenStore(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("could not init state dir: %w", err)
	}

	client, err := api.NewClient(cfg, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("could not init api client: %w", err)
	}

	session := &models.Session{}
	view := render.NewFeedView(session, log)
	form := service.NewFormService(client, log)

	a := &app{
		cfg:     cfg,
		log:     log,
		client:  client,
		session: session,
		view:    view,
		form:    form,
		friends: service.NewFriendService(client, log),
		geo:     geocode.NewClient(cfg, log),
	}
	a.feed = service.NewFeedService(client, view, form, session, cfg, log, confirmPrompt)
	return a, nil
}

// restoreSession восстанавливает сессию по сохраненным учетным данным.
// Команды, требующие входа, вызывают его первым делом.
func (a *app) restoreSession(ctx context.Context) error {
	sess, err := a.client.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return errors.New("not logged in, run: hangouts login")
		}
		return err
	}
	a.session.Set(sess.UserID, sess.Username)
	return nil
}

// confirmPrompt спрашивает подтверждение удаления через терминал
func confirmPrompt(checkinID string) bool {
	return promptYesNo(fmt.Sprintf("Delete check-in %s? [y/N]: ", checkinID))
}

func promptYesNo(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "путь к YAML-профилю конфигурации")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := a.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "signup":
		return a.cmdSignup(ctx, args)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "reset-password":
		return a.cmdResetPassword(ctx, args)
	case "delete-account":
		return a.cmdDeleteAccount(ctx, args)
	case "feed":
		return a.cmdFeed(ctx)
	case "checkin":
		return a.cmdCheckin(ctx, args)
	case "coming":
		return a.cmdComing(ctx, args)
	case "delete":
		return a.cmdDelete(ctx, args)
	case "friends":
		return a.cmdFriends(ctx)
	case "requests":
		return a.cmdRequests(ctx)
	case "friend-add":
		return a.cmdFriendAdd(ctx, args)
	case "friend-accept":
		return a.cmdFriendDecision(ctx, args, a.friends.Accept, "Friend request accepted")
	case "friend-reject":
		return a.cmdFriendDecision(ctx, args, a.friends.Reject, "Friend request rejected")
	case "search":
		return a.cmdSearch(ctx, args)
	case "locate":
		return a.cmdLocate(ctx, args)
	case "register-push":
		return a.cmdRegisterPush(ctx, args)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email аккаунта")
	password := fs.String("password", "", "пароль")
	remember := fs.Bool("remember", false, "продлить срок жизни сессии")
	fs.Parse(args)

	sess, err := a.client.Login(ctx, *email, *password, *remember)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", sess.Username)
	return nil
}

func (a *app) cmdSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	username := fs.String("username", "", "имя пользователя")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "пароль")
	fs.Parse(args)

	sess, err := a.client.Signup(ctx, *username, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome, %s\n", sess.Username)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	a.session.Clear()
	fmt.Println("Logged out")
	return nil
}

func (a *app) cmdWhoami(ctx context.Context) error {
	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", a.session.Username, a.session.UserID)
	return nil
}

func (a *app) cmdResetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ExitOnError)
	email := fs.String("email", "", "email аккаунта")
	fs.Parse(args)

	if err := a.client.RequestPasswordReset(ctx, *email); err != nil {
		return err
	}
	fmt.Println("Password reset email sent")
	return nil
}

func (a *app) cmdDeleteAccount(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete-account", flag.ExitOnError)
	yes := fs.Bool("yes", false, "не запрашивать подтверждение")
	fs.Parse(args)

	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	if !*yes && !promptYesNo("Delete your account and all check-ins? [y/N]: ") {
		return errors.New("cancelled")
	}
	if err := a.client.DeleteAccount(ctx); err != nil {
		return err
	}
	a.session.Clear()
	fmt.Println("Account deleted")
	return nil
}

func (a *app) cmdFeed(ctx context.Context) error {
	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	a.feed.Refresh(ctx)
	a.view.WriteList(os.Stdout)
	return nil
}

func (a *app) cmdCheckin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkin", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "широта")
	lng := fs.Float64("lng", 0, "долгота")
	location := fs.String("location", "", "название места (пусто - определить по координатам)")
	message := fs.String("message", "", "сообщение")
	duration := fs.Int("duration", service.DefaultDurationMinutes, "длительность в минутах: 30, 60, 120 или 240")
	visibility := fs.String("visibility", models.VisibilityEveryone, "видимость: everyone или specific")
	share := fs.String("share", "", "id друзей через запятую для режима specific")
	fs.Parse(args)

	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	if err := a.form.Open(ctx); err != nil {
		return err
	}

	// Без явного названия место определяется обратным геокодированием
	name := *location
	if name == "" && (*lat != 0 || *lng != 0) {
		name = a.geo.ReverseGeocode(ctx, *lat, *lng)
	}
	a.form.SetLocation(name, *lat, *lng)
	a.form.SetMessage(*message)
	if err := a.form.SetDuration(*duration); err != nil {
		return err
	}
	if err := a.form.SetVisibility(*visibility); err != nil {
		return err
	}
	if *share != "" {
		a.form.SetShareWith(strings.Split(*share, ","))
	}

	if err := a.feed.SubmitCheckin(ctx, a.form.Draft()); err != nil {
		return err
	}
	fmt.Println("Checked in!")
	a.view.WriteList(os.Stdout)
	return nil
}

func (a *app) cmdComing(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("coming", flag.ExitOnError)
	id := fs.String("id", "", "id чекина")
	fs.Parse(args)

	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	if err := a.feed.MarkAttending(ctx, *id); err != nil {
		return err
	}
	fmt.Println("You're on the list")
	a.view.WriteList(os.Stdout)
	return nil
}

func (a *app) cmdDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "id чекина")
	yes := fs.Bool("yes", false, "не запрашивать подтверждение")
	fs.Parse(args)

	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	if *yes {
		a.feed = service.NewFeedService(a.client, a.view, a.form, a.session, a.cfg, a.log, nil)
	}
	if err := a.feed.DeleteCheckin(ctx, *id); err != nil {
		if errors.Is(err, service.ErrDeclined) {
			return errors.New("cancelled")
		}
		return err
	}
	fmt.Println("Check-in deleted")
	return nil
}

func (a *app) cmdFriends(ctx context.Context) error {
	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	friends, err := a.friends.List(ctx)
	if err != nil {
		return err
	}
	if len(friends) == 0 {
		fmt.Println("No friends yet")
		return nil
	}
	for _, f := range friends {
		fmt.Printf("%s\t%s\t%s\n", f.UserID, f.Username, f.Email)
	}
	return nil
}

func (a *app) cmdRequests(ctx context.Context) error {
	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	requests, err := a.friends.Requests(ctx)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		fmt.Println("No pending requests")
		return nil
	}
	for _, r := range requests {
		fmt.Printf("%s\t%s\t%s\n", r.UserID, r.Username, r.Email)
	}
	return nil
}

func (a *app) cmdFriendAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("friend-add", flag.ExitOnError)
	email := fs.String("email", "", "email друга")
	fs.Parse(args)

	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	message, err := a.friends.Add(ctx, *email)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (a *app) cmdFriendDecision(ctx context.Context, args []string, decide func(context.Context, string) error, done string) error {
	fs := flag.NewFlagSet("friend-decision", flag.ExitOnError)
	id := fs.String("id", "", "id пользователя из заявки")
	fs.Parse(args)

	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	if err := decide(ctx, *id); err != nil {
		return err
	}
	// Список друзей мог измениться
	a.form.InvalidateFriends()
	fmt.Println(done)
	return nil
}

func (a *app) cmdSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("query", "", "поисковый запрос (пусто - интерактивный режим)")
	fs.Parse(args)

	if *query != "" {
		places, err := a.geo.Search(ctx, *query)
		if err != nil {
			return err
		}
		printPlaces(places)
		return nil
	}

	// Интерактивный режим: каждая строка - запрос, сетевой вызов уходит
	// только после паузы во вводе
	searcher := geocode.NewSearcher(a.geo, a.cfg.SearchDebounce, a.log)
	defer searcher.Cancel()

	fmt.Fprintln(os.Stderr, "Type a place name, Ctrl-D to quit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		searcher.Search(ctx, strings.TrimSpace(scanner.Text()), func(places []models.Place, err error) {
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			printPlaces(places)
		})
	}
	return scanner.Err()
}

func printPlaces(places []models.Place) {
	if len(places) == 0 {
		fmt.Println("No places found")
		return
	}
	for _, p := range places {
		fmt.Printf("%.6f,%.6f\t%s\n", p.Lat, p.Lon, p.DisplayName)
	}
}

func (a *app) cmdLocate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("locate", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "широта")
	lng := fs.Float64("lng", 0, "долгота")
	fs.Parse(args)

	fmt.Println(a.geo.ReverseGeocode(ctx, *lat, *lng))
	return nil
}

func (a *app) cmdRegisterPush(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register-push", flag.ExitOnError)
	token := fs.String("token", "", "push-токен устройства")
	fs.Parse(args)

	if !a.cfg.Push {
		return errors.New("push notifications are disabled in this profile")
	}
	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	if err := a.client.RegisterFCMToken(ctx, a.session.UserID, *token); err != nil {
		return err
	}
	fmt.Println("Push token registered")
	return nil
}
