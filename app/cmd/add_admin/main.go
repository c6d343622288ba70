package main

import (
	"flag"
	"fmt"
	"os"

	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_admin -email <email> -password <password> [-first-name <name>] [-last-name <name>]")
		os.Exit(1)
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 14)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:     *email,
		Password:  string(hash),
		FirstName: *firstName,
		LastName:  *lastName,
		IsAdmin:   true,
		IsActive:  true,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", user.FullName(), user.Email)
}
