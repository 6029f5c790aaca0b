// stylerctl is a small terminal client for the Styler API: sign in, list
// your appointments, book, confirm, complete, cancel or delete them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/BelskviK/Styler-sub001/client"
	"github.com/BelskviK/Styler-sub001/models"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	apiURL := os.Getenv("STYLER_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		runLogin(ctx, apiURL, os.Args[2:])
	case "list":
		runList(ctx, apiURL, os.Args[2:])
	case "book":
		runBook(ctx, apiURL, os.Args[2:])
	case "status":
		runStatus(ctx, apiURL, os.Args[2:])
	case "delete":
		runDelete(ctx, apiURL, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: stylerctl <command> [flags]

commands:
  login   -user <email|phone> -pass <password>
  list    [-search <text>] [-sort <field>] [-desc]
  book    -name <n> -phone <p> [-email <e>] -stylist <id> -service <id> -time <RFC3339> -consent
  status  -id <appointment-id> -to <pending|confirmed|completed|cancelled>
  delete  -id <appointment-id>

set STYLER_API_URL for the server address and STYLER_TOKEN after login`)
}

func runLogin(ctx context.Context, apiURL string, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("user", "", "email or phone")
	pass := fs.String("pass", "", "password")
	fs.Parse(args)

	c := client.New(apiURL, "")
	resp, err := c.Login(ctx, *user, *pass)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	fmt.Println(resp.Token)
}

// session builds the explicit session object from STYLER_TOKEN and refuses
// to proceed on a missing or expired token.
func session() *client.Session {
	token := os.Getenv("STYLER_TOKEN")
	if token == "" {
		log.Fatal("STYLER_TOKEN not set; run stylerctl login first")
	}
	s, err := client.NewSession(token)
	if err != nil {
		log.Fatalf("invalid token: %v", err)
	}
	if s.Expired() {
		log.Fatal("token expired; run stylerctl login again")
	}
	return s
}

func loadList(ctx context.Context, apiURL string, s *client.Session) *client.AppointmentList {
	vm := client.NewAppointmentList(client.New(apiURL, s.Token))
	if err := vm.Load(ctx, s.Identity.Role, s.Identity); err != nil {
		log.Fatalf("load failed: %v", err)
	}
	return vm
}

func runList(ctx context.Context, apiURL string, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "filter by customer name")
	sortKey := fs.String("sort", "scheduledTime", "sort field (dotted JSON path)")
	desc := fs.Bool("desc", false, "sort descending")
	fs.Parse(args)

	s := session()
	vm := loadList(ctx, apiURL, s)

	view := client.DeriveView(vm.Items(), client.ViewOptions{
		Search:     *search,
		SortKey:    *sortKey,
		Descending: *desc,
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tPHONE\tTIME\tSTATUS")
	for _, a := range view {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.CustomerName, a.CustomerPhone,
			a.ScheduledTime.Format(time.RFC3339), a.Status)
	}
	w.Flush()
}

func runBook(ctx context.Context, apiURL string, args []string) {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	name := fs.String("name", "", "customer name")
	phone := fs.String("phone", "", "customer phone")
	email := fs.String("email", "", "customer email (optional)")
	stylist := fs.String("stylist", "", "stylist id")
	service := fs.String("service", "", "service id")
	when := fs.String("time", "", "scheduled time, RFC3339")
	consent := fs.Bool("consent", false, "consent to be contacted")
	fs.Parse(args)

	scheduled, err := time.Parse(time.RFC3339, *when)
	if err != nil && *when != "" {
		log.Fatalf("invalid -time: %v", err)
	}

	form := client.BookingForm{
		CustomerName:  *name,
		CustomerPhone: *phone,
		CustomerEmail: *email,
		StylistID:     *stylist,
		ServiceID:     *service,
		ScheduledTime: scheduled,
		Consent:       *consent,
	}

	s := session()
	vm := loadList(ctx, apiURL, s)
	if err := vm.Create(ctx, form); err != nil {
		fatalWithFields(err)
	}
	fmt.Println("booked")
}

func runStatus(ctx context.Context, apiURL string, args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	id := fs.String("id", "", "appointment id")
	to := fs.String("to", "", "new status")
	fs.Parse(args)

	s := session()
	vm := loadList(ctx, apiURL, s)
	if err := vm.UpdateStatus(ctx, *id, models.AppointmentStatus(*to)); err != nil {
		fatalWithFields(err)
	}
	fmt.Println("updated")
}

func runDelete(ctx context.Context, apiURL string, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "appointment id")
	fs.Parse(args)

	s := session()
	vm := loadList(ctx, apiURL, s)
	if err := vm.Delete(ctx, *id); err != nil {
		log.Fatalf("delete failed: %v", err)
	}
	fmt.Println("deleted")
}

func fatalWithFields(err error) {
	if verr, ok := err.(*client.ValidationError); ok {
		fmt.Fprintln(os.Stderr, verr.Message)
		for field, msg := range verr.FieldErrors {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
		os.Exit(1)
	}
	log.Fatal(err)
}
