package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/app"
	"github.com/gahanad/Blogsy-website-front/config"
	"github.com/gahanad/Blogsy-website-front/models"
	"github.com/gahanad/Blogsy-website-front/services"
	"github.com/gahanad/Blogsy-website-front/session"
)

var routeQuit = app.Route{Name: "quit"}

// ui holds the terminal front-end: one scanner for input, the services the
// page controllers run on, and the screen loop that owns all navigation.
type ui struct {
	in    *bufio.Scanner
	auth  *services.AuthService
	users *services.UserService
	posts *services.PostService
	msgs  *services.MessageService
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	if configPath != "" {
		if err := config.LoadConfig(configPath); err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}
	} else {
		config.LoadDefaults()
	}

	store := session.NewStore(config.AppConfig.Session.Path)
	client := api.NewClient(config.AppConfig.API.URL, store)

	u := &ui{
		in:    bufio.NewScanner(os.Stdin),
		auth:  services.NewAuthService(client, store),
		users: services.NewUserService(client),
		posts: services.NewPostService(client),
		msgs:  services.NewMessageService(client),
	}
	u.run(context.Background())
}

// run is the navigation loop. Screens never navigate themselves: they return
// a route and the loop decides, so the 401-to-login jump lives in one place.
func (u *ui) run(ctx context.Context) {
	route := app.RouteLogin
	if u.auth.CurrentUser() != nil {
		route = app.RouteFeed
	}

	for route.Name != routeQuit.Name {
		switch route.Name {
		case app.RouteLogin.Name:
			route = u.loginScreen(ctx)
		case "register":
			route = u.registerScreen(ctx)
		case "forgot":
			route = u.forgotScreen(ctx)
		case "reset":
			route = u.resetScreen(ctx)
		case app.RouteFeed.Name:
			route = u.feedScreen(ctx)
		case "profile":
			route = u.profileScreen(ctx, route.Arg)
		case "settings":
			route = u.settingsScreen(ctx)
		case app.RouteMessages.Name:
			route = u.conversationsScreen(ctx)
		case "conversation":
			route = u.conversationScreen(ctx, route.Arg)
		default:
			route = app.RouteFeed
		}
	}
	fmt.Println("bye")
}

// redirect maps an action error to a route override. Unauthorized always
// goes back to login; everything else stays on the current screen.
func (u *ui) redirect(err error) (app.Route, bool) {
	if api.KindOf(err) == api.KindUnauthorized {
		fmt.Println("Session expired, please log in again.")
		return app.RouteLogin, true
	}
	fmt.Println(api.UserMessage(err, "Something went wrong. Please try again."))
	return app.RouteNone, false
}

func (u *ui) prompt(label string) string {
	fmt.Print(label)
	if !u.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(u.in.Text())
}

func (u *ui) loginScreen(ctx context.Context) app.Route {
	page := app.NewLoginPage(u.auth)
	for {
		fmt.Println("\n=== Blogsy login ===")
		fmt.Println("[l]ogin  [r]egister  [f]orgot password  [t] reset with token  [q]uit")
		switch u.prompt("> ") {
		case "l":
			email := u.prompt("email: ")
			password := u.prompt("password: ")
			route, err := page.Submit(ctx, email, password)
			if err != nil {
				fmt.Println(api.UserMessage(err, "Login failed."))
				continue
			}
			return route
		case "r":
			return app.Route{Name: "register"}
		case "f":
			return app.Route{Name: "forgot"}
		case "t":
			return app.Route{Name: "reset"}
		case "q":
			return routeQuit
		}
	}
}

func (u *ui) registerScreen(ctx context.Context) app.Route {
	page := app.NewRegisterPage(u.auth)
	fmt.Println("\n=== Create account ===")
	username := u.prompt("username: ")
	email := u.prompt("email: ")
	password := u.prompt("password: ")
	confirm := u.prompt("confirm password: ")

	route, err := page.Submit(ctx, username, email, password, confirm)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Registration failed."))
		return app.RouteLogin
	}
	fmt.Println("Account created, you can log in now.")
	return route
}

func (u *ui) forgotScreen(ctx context.Context) app.Route {
	page := app.NewForgotPasswordPage(u.auth)
	fmt.Println("\n=== Forgot password ===")
	email := u.prompt("email: ")

	message, route, err := page.Submit(ctx, email)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Request failed."))
		return app.RouteLogin
	}
	fmt.Println(message)
	return route
}

func (u *ui) resetScreen(ctx context.Context) app.Route {
	page := app.NewResetPasswordPage(u.auth)
	fmt.Println("\n=== Reset password ===")
	token := u.prompt("reset token: ")
	password := u.prompt("new password: ")
	confirm := u.prompt("confirm password: ")

	message, route, err := page.Submit(ctx, token, password, confirm)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Reset failed."))
		return app.RouteLogin
	}
	fmt.Println(message)
	return route
}

func (u *ui) feedScreen(ctx context.Context) app.Route {
	page := app.NewFeedPage(u.auth, u.users, u.posts)
	defer page.Close()

	if err := page.Load(ctx); err != nil {
		if route, ok := u.redirect(err); ok {
			return route
		}
		return app.RouteLogin
	}

	for {
		renderFeed(page)
		fmt.Println("[p]ost  [l]ike N  [c]omment N  [s]earch  [m]essages  [e] settings  [o] logout  [q]uit")
		input := u.prompt("> ")
		cmd, arg := splitCommand(input)
		switch cmd {
		case "p":
			title := u.prompt("title: ")
			content := u.prompt("content: ")
			if err := page.SubmitPost(ctx, title, content); err != nil {
				if route, ok := u.redirect(err); ok {
					return route
				}
			}
		case "l":
			post, ok := postAt(page.Posts(), arg)
			if !ok {
				fmt.Println("no such post")
				continue
			}
			if err := page.ToggleLike(ctx, post.ID); err != nil {
				if route, ok := u.redirect(err); ok {
					return route
				}
			}
		case "c":
			post, ok := postAt(page.Posts(), arg)
			if !ok {
				fmt.Println("no such post")
				continue
			}
			text := u.prompt("comment: ")
			if err := page.Comment(ctx, post.ID, text); err != nil {
				if route, ok := u.redirect(err); ok {
					return route
				}
			}
		case "s":
			if route, ok := page.Search(u.prompt("username: ")); ok {
				return route
			}
		case "m":
			return app.RouteMessages
		case "e":
			return app.Route{Name: "settings"}
		case "o":
			return page.Logout()
		case "q":
			return routeQuit
		}
	}
}

func (u *ui) profileScreen(ctx context.Context, username string) app.Route {
	page := app.NewProfilePage(u.auth, u.users, u.posts, u.msgs, username)
	defer page.Close()

	if err := page.Load(ctx); err != nil {
		if route, ok := u.redirect(err); ok {
			return route
		}
		return app.RouteFeed
	}

	for {
		renderProfile(page)
		fmt.Println("[f]ollow/unfollow  [m]essage  [b]ack  [q]uit")
		switch u.prompt("> ") {
		case "f":
			if err := page.ToggleFollow(ctx); err != nil {
				if route, ok := u.redirect(err); ok {
					return route
				}
			}
		case "m":
			route, err := page.StartConversation(ctx)
			if err != nil {
				if route, ok := u.redirect(err); ok {
					return route
				}
				continue
			}
			return route
		case "b":
			return app.RouteFeed
		case "q":
			return routeQuit
		}
	}
}

func (u *ui) settingsScreen(ctx context.Context) app.Route {
	page := app.NewSettingsPage(u.users)
	defer page.Close()

	if err := page.Load(ctx); err != nil {
		if route, ok := u.redirect(err); ok {
			return route
		}
		return app.RouteFeed
	}

	current := page.Current()
	fmt.Println("\n=== Settings === (leave a field unchanged to keep it)")
	username := promptDefault(u, "username", current.Username)
	email := promptDefault(u, "email", current.Email)
	bio := promptDefault(u, "bio", current.Bio)
	avatar := promptDefault(u, "avatar", current.Avatar)

	updated, err := page.Submit(ctx, username, email, bio, avatar)
	if err != nil {
		if route, ok := u.redirect(err); ok {
			return route
		}
		return app.RouteFeed
	}
	fmt.Printf("Saved. You are %s <%s>.\n", updated.Username, updated.Email)
	return app.RouteFeed
}

func (u *ui) conversationsScreen(ctx context.Context) app.Route {
	page := app.NewConversationsPage(u.msgs)
	defer page.Close()

	if err := page.Load(ctx); err != nil {
		if route, ok := u.redirect(err); ok {
			return route
		}
		return app.RouteFeed
	}

	for {
		renderConversations(page)
		fmt.Println("[o]pen N  [d]elete N  [b]ack  [q]uit")
		input := u.prompt("> ")
		cmd, arg := splitCommand(input)
		switch cmd {
		case "o":
			conv, ok := conversationAt(page.Conversations(), arg)
			if !ok {
				fmt.Println("no such conversation")
				continue
			}
			return page.Open(conv.ID)
		case "d":
			conv, ok := conversationAt(page.Conversations(), arg)
			if !ok {
				fmt.Println("no such conversation")
				continue
			}
			if err := page.Delete(ctx, conv.ID); err != nil {
				if route, ok := u.redirect(err); ok {
					return route
				}
			}
		case "b":
			return app.RouteFeed
		case "q":
			return routeQuit
		}
	}
}

func (u *ui) conversationScreen(ctx context.Context, conversationID string) app.Route {
	page := app.NewConversationPage(u.auth, u.msgs, conversationID)
	defer page.Close()

	if err := page.Load(ctx); err != nil {
		if route, ok := u.redirect(err); ok {
			return route
		}
		return app.RouteMessages
	}

	for {
		renderConversation(page)
		fmt.Println("[s]end  [b]ack  [q]uit")
		switch u.prompt("> ") {
		case "s":
			if err := page.Send(ctx, u.prompt("message: ")); err != nil {
				if route, ok := u.redirect(err); ok {
					return route
				}
			}
		case "b":
			return app.RouteMessages
		case "q":
			return routeQuit
		}
	}
}

func renderFeed(page *app.FeedPage) {
	user := page.User()
	fmt.Printf("\n=== Feed === %s | %d posts | %d followers | %d following\n",
		user.Username, user.PostsCount, len(user.Followers), len(user.Following))
	for i, post := range page.Posts() {
		fmt.Printf("%2d. %s by %s\n    %s\n    %d likes, %d comments\n",
			i+1, post.Title, post.Author.Username, post.Content, len(post.Likes), len(post.Comments))
		for _, comment := range post.Comments {
			fmt.Printf("      %s: %s\n", comment.User.Username, comment.Text)
		}
	}
}

func renderProfile(page *app.ProfilePage) {
	profile := page.Profile()
	fmt.Printf("\n=== %s ===\n", profile.Username)
	if profile.Bio != "" {
		fmt.Println(profile.Bio)
	}
	fmt.Printf("%d followers, %d following\n", len(profile.Followers), len(profile.Following))
	if page.IsOwn() {
		fmt.Println("(this is you)")
	}
	for i, post := range page.UserPosts() {
		fmt.Printf("%2d. %s (%d likes)\n", i+1, post.Title, len(post.Likes))
	}
}

func renderConversations(page *app.ConversationsPage) {
	fmt.Println("\n=== Messages ===")
	conversations := page.Conversations()
	if len(conversations) == 0 {
		fmt.Println("no conversations yet")
		return
	}
	for i, conv := range conversations {
		names := make([]string, 0, len(conv.Participants))
		for _, p := range conv.Participants {
			names = append(names, p.Username)
		}
		last := ""
		if conv.LastMessage != nil {
			last = conv.LastMessage.Content
		}
		fmt.Printf("%2d. %s | %s\n", i+1, strings.Join(names, ", "), last)
	}
}

func renderConversation(page *app.ConversationPage) {
	fmt.Printf("\n=== Conversation === (%d messages)\n", page.Total())
	for _, msg := range page.Messages() {
		name := msg.Sender.Username
		if page.Mine(msg) {
			name = "me"
		}
		fmt.Printf("%s: %s\n", name, msg.Content)
	}
}

// splitCommand separates "l 3" into the command and its argument.
func splitCommand(input string) (string, string) {
	parts := strings.SplitN(input, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func postAt(posts []models.Post, arg string) (models.Post, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(posts) {
		return models.Post{}, false
	}
	return posts[n-1], true
}

func conversationAt(conversations []models.Conversation, arg string) (models.Conversation, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(conversations) {
		return models.Conversation{}, false
	}
	return conversations[n-1], true
}

func promptDefault(u *ui, label, current string) string {
	value := u.prompt(fmt.Sprintf("%s [%s]: ", label, current))
	if value == "" {
		return current
	}
	return value
}
