package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/airlabs/air-tasks/config"
	"github.com/airlabs/air-tasks/internal/application"
	"github.com/airlabs/air-tasks/pkg/mailer"
)

// notify_worker drains the task event queue. Registration events become a
// welcome email when Mailgun is configured; everything else is logged.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	var mg *mailer.Mailgun
	if cfg.NotifyEmailEnabled {
		if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
			log.Fatal("NOTIFY_EMAIL_ENABLED=true but Mailgun not configured")
		}
		mg = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQEventQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEventQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var ev application.Event
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			if ev.Type == application.EventUserRegistered && mg != nil && ev.Email != "" {
				subject := "Welcome to AIR Tasks"
				text := fmt.Sprintf("Hi %s,\n\nyour account is ready. Log in and add your first task.", ev.Name)
				c, cancel := context.WithTimeout(ctx, 15*time.Second)
				if err := mg.Send(c, ev.Email, subject, text, ""); err != nil {
					cancel()
					log.Printf("send failed: %v", err)
					_ = msg.Nack(false, true)
					continue
				}
				cancel()
			} else {
				log.Printf("event %s user=%d task=%d", ev.Type, ev.UserID, ev.TaskID)
			}
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("notify worker listening on queue=%s", cfg.RabbitMQEventQueue)
	<-stop
	log.Printf("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
