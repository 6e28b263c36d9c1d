package main

import (
	"crypto/tls"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/wneessen/go-mail"
)

func main() {
	host := flag.String("host", "localhost", "SMTP server host")
	port := flag.Int("port", 1025, "SMTP server port")
	username := flag.String("user", "", "SMTP username")
	password := flag.String("pass", "", "SMTP password")
	from := flag.String("from", "", "From email address")
	to := flag.String("to", "", "To email address")
	flag.Parse()

	if *from == "" || *to == "" {
		fmt.Println("Error: from and to email addresses are required")
		os.Exit(1)
	}

	opts := []mail.Option{
		mail.WithPort(*port),
		mail.WithTimeout(30 * time.Second),
		mail.WithHELO("localhost"),
		mail.WithDebugLog(),
		mail.WithoutNoop(),
		mail.WithTLSConfig(&tls.Config{
			InsecureSkipVerify: true,
		}),
	}

	if *username != "" && *password != "" {
		opts = append(opts,
			mail.WithUsername(*username),
			mail.WithPassword(*password),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(*host, opts...)
	if err != nil {
		log.Fatalf("Failed to create mail client: %v", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(*from); err != nil {
		log.Fatalf("Failed to set From address: %v", err)
	}
	if err := msg.To(*to); err != nil {
		log.Fatalf("Failed to set To address: %v", err)
	}

	msg.Subject("Test Email from accountd")
	msg.SetBodyString(mail.TypeTextPlain, "This is a test email from the accountd email testing tool.")

	if err := client.Send(msg); err != nil {
		log.Fatalf("Failed to send email: %v", err)
	}

	fmt.Println("Email sent successfully!")
}
