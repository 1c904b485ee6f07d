package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
)

func main() {
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "plain text password")
	flag.Parse()

	if *firstName == "" || *lastName == "" || *email == "" || *password == "" {
		log.Fatal("Usage: adduser -first NAME -last NAME -email ADDR -password PASS")
	}

	cfg := config.Load()
	defer cfg.DB.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		FirstName:      *firstName,
		LastName:       *lastName,
		Email:          *email,
		Password:       hashed,
		AvatarLocation: "../static/images/profile-photo.png",
	}

	if err := database.CreateUser(cfg.DB, user); err != nil {
		log.Fatal("Error creating user:", err)
	}
	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
