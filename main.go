package main

import (
	"context"
	"log"
	"time"

	"hostelhub_client/domain"
	"hostelhub_client/startup"
	"hostelhub_client/startup/config"

	"github.com/joho/godotenv"
)

// A headless smoke run of the client core: log in with env credentials and
// list what the current role would see on its home screen.
func main() {
	godotenv.Load()
	cfg := config.NewConfig()

	app, err := startup.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer app.Shutdown(context.Background())

	if err := app.Login(ctx, cfg.Email, cfg.Password); err != nil {
		app.Logger.Fatalf("Login failed: %v", err)
	}
	defer app.Logout()

	switch app.Session.Role() {
	case domain.RoleStudent:
		reservations, err := app.Client.MyReservations(ctx)
		if err != nil {
			app.Logger.Fatalf("Error fetching reservations: %v", err)
		}
		for _, r := range reservations {
			app.Logger.Infof("Reservation %s at %s: %s", r.ID, r.HostelID, r.Status)
		}

		bookings, err := app.Client.MyBookings(ctx)
		if err != nil {
			app.Logger.Fatalf("Error fetching bookings: %v", err)
		}
		for _, b := range bookings {
			app.Logger.Infof("Booking %s at %s: %s", b.ID, b.HostelID, b.Status)
		}
	case domain.RoleManager:
		hostels, err := app.Client.MyHostels(ctx)
		if err != nil {
			app.Logger.Fatalf("Error fetching hostels: %v", err)
		}
		for _, h := range hostels {
			app.Logger.Infof("Hostel %s (%s)", h.Name, h.ID)
		}
	default:
		app.Logger.Fatal("Unknown user role")
	}
}
