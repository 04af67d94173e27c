package config

import (
	"context"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Config holds the application configuration
type Config struct {
	FirebaseApp    *firebase.App
	FirebaseAuth   *auth.Client
	Firestore      *firestore.Client
	Port           string
	AdminEmail     string
	TokenSecret    []byte
	AllowedOrigins []string
}

// findAvailablePort tries to find an available port starting from the given port
func findAvailablePort(startPort int) int {
	for port := startPort; port < startPort+100; port++ {
		address := ":" + strconv.Itoa(port)
		listener, err := net.Listen("tcp", address)
		if err == nil {
			listener.Close()
			return port
		}
	}
	return startPort // fallback to original port if no available ports found
}

// New creates a new application configuration
func New() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Try to find an available port if the specified port is in use
	portInt, _ := strconv.Atoi(port)
	port = strconv.Itoa(findAvailablePort(portInt))

	firebaseCredentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if firebaseCredentialsPath == "" {
		log.Fatal("FIREBASE_CREDENTIALS_PATH environment variable is required")
	}

	tokenSecret := os.Getenv("TOKEN_SECRET")
	if tokenSecret == "" {
		log.Fatal("TOKEN_SECRET environment variable is required")
	}

	opt := option.WithCredentialsFile(firebaseCredentialsPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Fatalf("Error initializing Firebase app: %v\n", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		log.Fatalf("Error initializing Firebase auth: %v\n", err)
	}

	firestoreClient, err := app.Firestore(context.Background())
	if err != nil {
		log.Fatalf("Error initializing Firestore: %v\n", err)
	}

	var origins []string
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			origins = append(origins, strings.TrimSpace(origin))
		}
	}

	return &Config{
		FirebaseApp:    app,
		FirebaseAuth:   authClient,
		Firestore:      firestoreClient,
		Port:           port,
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		TokenSecret:    []byte(tokenSecret),
		AllowedOrigins: origins,
	}
}
