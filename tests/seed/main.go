package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"glowdesk/config"
	"glowdesk/database"
	"glowdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with a realistic salon: a service
// catalogue, business hours, a holiday, a handful of clients and a week
// of appointments. Also prints a bcrypt hash for ADMIN_PASSWORD_HASH.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Clear the collections we seed.
	for _, name := range []string{"services", "clients", "appointments", "settings", "holidays"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	// Service catalogue.
	services := []models.Service{
		{ID: uuid.New().String(), Name: "Haircut", DurationMinutes: 45, BreakTimeMinutes: 15, Price: 42, Active: true},
		{ID: uuid.New().String(), Name: "Coloring", DurationMinutes: 90, BreakTimeMinutes: 30, Price: 110, Active: true},
		{ID: uuid.New().String(), Name: "Blowout", DurationMinutes: 30, Price: 28, Active: true},
		{ID: uuid.New().String(), Name: "Manicure", DurationMinutes: 60, Price: 35, Active: true},
		{ID: uuid.New().String(), Name: "Perm", DurationMinutes: 120, BreakTimeMinutes: 15, Price: 95, Active: false},
	}
	var serviceDocs []interface{}
	for _, s := range services {
		serviceDocs = append(serviceDocs, s)
	}
	if _, err := db.Collection("services").InsertMany(ctx, serviceDocs); err != nil {
		log.Fatalf("Failed to insert services: %v", err)
	}

	// Business hours: Tue-Sat 09:00-18:00, closed for lunch on Saturdays.
	settings := models.HoursSettings{
		ID: "business-hours",
		Opening: []models.BusinessHoursRule{
			{
				ID:        uuid.New().String(),
				Name:      "Weekday hours",
				StartTime: "09:00",
				EndTime:   "18:00",
				Days: []models.Weekday{
					models.Tuesday, models.Wednesday, models.Thursday,
					models.Friday, models.Saturday,
				},
			},
		},
		Closing: []models.BusinessHoursRule{
			{
				ID:        uuid.New().String(),
				Name:      "Saturday lunch",
				StartTime: "12:00",
				EndTime:   "13:00",
				Days:      []models.Weekday{models.Saturday},
			},
		},
	}
	if _, err := db.Collection("settings").InsertOne(ctx, settings); err != nil {
		log.Fatalf("Failed to insert hours settings: %v", err)
	}

	// One upcoming day off.
	loc := config.Location()
	today := time.Now().In(loc)
	holiday := models.Holiday{
		Date:     models.NewDateKey(today.AddDate(0, 0, 14)),
		Name:     "Team training day",
		IsDayOff: true,
	}
	if _, err := db.Collection("holidays").InsertOne(ctx, holiday); err != nil {
		log.Fatalf("Failed to insert holiday: %v", err)
	}

	// Clients.
	firstNames := []string{"Anna", "Ben", "Carla", "Derek", "Elena", "Farid", "Greta", "Hugo"}
	lastNames := []string{"Meyer", "Okafor", "Silva", "Tanaka", "Unger", "Vogel", "Weiss", "Yilmaz"}
	var clients []models.Client
	var clientDocs []interface{}
	for i := 0; i < len(firstNames); i++ {
		c := models.Client{
			ID:        uuid.New().String(),
			FirstName: firstNames[i],
			LastName:  lastNames[i],
			Email:     fmt.Sprintf("%s.%s@example.com", firstNames[i], lastNames[i]),
			Phone:     fmt.Sprintf("+49 170 000%04d", i+1),
			CreatedAt: time.Now(),
		}
		clients = append(clients, c)
		clientDocs = append(clientDocs, c)
	}
	if _, err := db.Collection("clients").InsertMany(ctx, clientDocs); err != nil {
		log.Fatalf("Failed to insert clients: %v", err)
	}

	// A week of appointments: three per day at 09:00, 11:00 and 14:30.
	starts := []struct{ hour, min int }{{9, 0}, {11, 0}, {14, 30}}
	statuses := []models.AppointmentStatus{
		models.StatusScheduled, models.StatusConfirmed, models.StatusPending,
	}
	var appointmentDocs []interface{}
	for day := 0; day < 7; day++ {
		date := today.AddDate(0, 0, day)
		if date.Weekday() == time.Sunday || date.Weekday() == time.Monday {
			continue
		}
		for i, at := range starts {
			svc := services[rand.Intn(3)]
			client := clients[rand.Intn(len(clients))]
			start := time.Date(date.Year(), date.Month(), date.Day(), at.hour, at.min, 0, 0, loc)
			appt := models.Appointment{
				ID:         uuid.New().String(),
				CalendarID: models.DefaultCalendarID,
				ClientID:   client.ID,
				Start:      start,
				End:        start.Add(time.Duration(svc.BlockingMinutes()) * time.Minute),
				Status:     statuses[i%len(statuses)],
				ServiceIDs: []string{svc.ID},
				CreatedAt:  time.Now(),
				UpdatedAt:  time.Now(),
			}
			appointmentDocs = append(appointmentDocs, appt)
		}
	}
	if _, err := db.Collection("appointments").InsertMany(ctx, appointmentDocs); err != nil {
		log.Fatalf("Failed to insert appointments: %v", err)
	}

	// Print a hash for the dev admin password.
	hashed, err := bcrypt.GenerateFromPassword([]byte("$Password1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	fmt.Printf("Seeded %d services, %d clients, %d appointments\n",
		len(serviceDocs), len(clientDocs), len(appointmentDocs))
	fmt.Printf("ADMIN_PASSWORD_HASH for '$Password1234': %s\n", string(hashed))
}
