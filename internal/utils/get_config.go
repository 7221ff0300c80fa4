package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Server configuration
	Port        string `yaml:"PORT"`
	AppURL      string `yaml:"APP_URL"`
	FrontendURL string `yaml:"FRONTEND_URL"`

	// Groq API configuration
	GroqAPIKey  string `yaml:"GROQ_API_KEY"`
	GroqModel   string `yaml:"GROQ_MODEL"`
	GroqBaseURL string `yaml:"GROQ_BASE_URL"`

	// Image resolution configuration
	ImageResolver string `yaml:"IMAGE_RESOLVER"` // "scrape" or "delegate"
	ImageStorage  string `yaml:"IMAGE_STORAGE"`  // "local" or "s3"
	ImageDir      string `yaml:"IMAGE_DIR"`
	AIModelURL    string `yaml:"AI_MODEL_URL"` // seed address for the delegated image service

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig returns the configured value for key, falling back to the
// environment so deployments can override config.yaml without editing it.
func GetConfig(key string) string {
	value := ""
	switch key {
	case "DB_USER":
		value = config.DBUser
	case "DB_NAME":
		value = config.DBName
	case "DB_PASSWORD":
		value = config.DBPassword
	case "DB_PORT":
		value = config.DBPort
	case "DB_HOST":
		value = config.DBHost
	case "PORT":
		value = config.Port
	case "APP_URL":
		value = config.AppURL
	case "FRONTEND_URL":
		value = config.FrontendURL
	case "GROQ_API_KEY":
		value = config.GroqAPIKey
	case "GROQ_MODEL":
		value = config.GroqModel
	case "GROQ_BASE_URL":
		value = config.GroqBaseURL
	case "IMAGE_RESOLVER":
		value = config.ImageResolver
	case "IMAGE_STORAGE":
		value = config.ImageStorage
	case "IMAGE_DIR":
		value = config.ImageDir
	case "AI_MODEL_URL":
		value = config.AIModelURL
	case "SMTP_HOST":
		value = config.SMTPHost
	case "SMTP_PORT":
		value = config.SMTPPort
	case "SMTP_SENDER_NAME":
		value = config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		value = config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		value = config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		value = config.AWSS3Bucket
	case "AWS_S3_REGION":
		value = config.AWSS3Region
	case "AWS_ACCESS_KEY":
		value = config.AWSAccessKey
	case "AWS_SECRET_KEY":
		value = config.AWSSecretKey
	}

	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
