package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Idowu-David/Nithub-Booking-System/internal/booking"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

const groupID = "booking-events-consumer-group"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}

	log.Println("Starting booking events consumer...")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		GroupID:        groupID,
		Topic:          booking.EventsTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("Error closing Kafka reader: %v", err)
		}
	}()

	log.Printf("Consumer connected to topic '%s' on brokers %s", booking.EventsTopic, brokers)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutdown signal received, stopping consumer.")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("Error reading message: %v", err)
				time.Sleep(5 * time.Second)
				continue
			}

			var payload repository.BookingEventPayload
			if err := json.Unmarshal(m.Value, &payload); err != nil {
				log.Printf("Skipping malformed event %s: %v", string(m.Key), err)
				continue
			}

			log.Printf("event=%s booking=%d user=%d desk=%d date=%s window=%s-%s status=%s",
				payload.Event, payload.BookingID, payload.UserID, payload.DeskID,
				payload.BookingDate, payload.StartTime, payload.EndTime, payload.Status)
		}
	}
}
