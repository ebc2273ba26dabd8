package main

// @title User Service API
// @version 1.0
// @description Signup, login and account administration for the ICT platform.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Signup and login

// @tag.name Users
// @tag.description Authenticated user endpoints

// @tag.name Admin
// @tag.description Admin-only account management

// @tag.name Health
// @tag.description Health check endpoints
