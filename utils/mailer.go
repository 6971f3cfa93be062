package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, htmlBody string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(htmlBody),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

func SendWelcomeEmail(to, name string) error {
	if name == "" {
		name = "User"
	}
	body := fmt.Sprintf(`<h2>Hello %s,</h2>
<p>Your account has been successfully created.<br>
Welcome to Healthy Meal Planner!</p>`, name)
	return sendEmail(to, "Welcome to Healthy Meal Planner", body)
}

func SendLoginAlert(to, name string) error {
	if name == "" {
		name = "User"
	}
	body := fmt.Sprintf(`<h2>Hello %s,</h2>
<p>Your account was just accessed. If this wasn't you, please reset your password.</p>`, name)
	return sendEmail(to, "Healthy Meal Planner Login Alert", body)
}

func SendSecurityAlert(to, name string) error {
	if name == "" {
		name = "User"
	}
	body := fmt.Sprintf(`<h2>Hello %s,</h2>
<p>There was a failed login attempt to your account. If this wasn't you, please reset your password.</p>`, name)
	return sendEmail(to, "Healthy Meal Planner Security Alert", body)
}
