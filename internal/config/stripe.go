package config

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PriceIDPro    string
	FrontendURL   string
}

func DefaultStripeConfig() *StripeConfig {
	return &StripeConfig{
		SecretKey:     getEnvOrDefault("STRIPE_SECRET_KEY", ""),
		WebhookSecret: getEnvOrDefault("STRIPE_WEBHOOK_SECRET", ""),
		PriceIDPro:    getEnvOrDefault("STRIPE_PRICE_ID_PRO", ""),
		FrontendURL:   getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}
}

func (c *StripeConfig) CheckoutSuccessURL() string {
	return c.FrontendURL + "/dashboard?checkout=success"
}

func (c *StripeConfig) CheckoutCancelURL() string {
	return c.FrontendURL + "/dashboard?checkout=canceled"
}
