// services/payment_service.go
package services

import (
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v79"
	stripecustomer "github.com/stripe/stripe-go/v79/customer"
	stripesubscription "github.com/stripe/stripe-go/v79/subscription"
)

// PaymentService is a thin wrapper around the subscription provider. The
// gateway is treated as an opaque boundary: callers get back a subscription
// id or an error, nothing provider-specific leaks out.
type PaymentService struct {
	secretKey string
}

func NewPaymentService() *PaymentService {
	key := os.Getenv("STRIPE_SECRET_KEY")
	stripe.Key = key
	return &PaymentService{secretKey: key}
}

// CreateSubscription subscribes the user to the given price plan and returns
// the provider's subscription id.
func (s *PaymentService) CreateSubscription(planID, userID, email string) (string, error) {
	if s.secretKey == "" {
		return "", fmt.Errorf("STRIPE_SECRET_KEY not set")
	}

	customer, err := stripecustomer.New(&stripe.CustomerParams{
		Email: stripe.String(email),
		Metadata: map[string]string{
			"userId": userID,
		},
	})
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}

	subscription, err := stripesubscription.New(&stripe.SubscriptionParams{
		Customer: stripe.String(customer.ID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(planID)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create subscription: %w", err)
	}

	return subscription.ID, nil
}
