package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"otpbridge-service/internal/pkg/constvars"
	"otpbridge-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"
)

// hooksend posts a send-sms hook delivery to a running bridge, playing the
// role the auth platform plays in production. Handy for smoke testing a
// deployment without triggering a real sign-in.
func main() {
	url := flag.String("url", "http://localhost:8080/hooks/send-sms", "send-sms hook endpoint")
	secret := flag.String("secret", "", "Standard Webhooks secret, empty sends unsigned")
	phone := flag.String("phone", "+966512345678", "destination phone number")
	otp := flag.String("otp", "123456", "one-time passcode to deliver")
	flag.Parse()

	event := requests.SendSMSHookEvent{
		User: requests.UserRecord{Phone: *phone},
		SMS:  requests.SMSMetadata{OTP: *otp},
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Error building payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("Error building request: %v", err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	if *secret != "" {
		if err := signRequest(req, *secret, payload); err != nil {
			log.Fatalf("Error signing payload: %v", err)
		}
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Error sending hook: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Error reading response: %v", err)
	}

	fmt.Printf("%s\n%s\n", resp.Status, body)
}

func signRequest(req *http.Request, secret string, payload []byte) error {
	signer, err := standardwebhooks.NewWebhook(strings.TrimPrefix(strings.TrimSpace(secret), "v1,"))
	if err != nil {
		return err
	}

	msgID := "msg_" + uuid.NewString()
	now := time.Now()
	signature, err := signer.Sign(msgID, now, payload)
	if err != nil {
		return err
	}

	req.Header.Set(constvars.HeaderWebhookID, msgID)
	req.Header.Set(constvars.HeaderWebhookTimestamp, strconv.FormatInt(now.Unix(), 10))
	req.Header.Set(constvars.HeaderWebhookSignature, signature)
	return nil
}
