package main

// @title Catalog Service API
// @version 1.0
// @description Product catalog and side by side comparison for refurbished and new ICT hardware.

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Products
// @tag.description Catalog management endpoints

// @tag.name Comparison
// @tag.description Product comparison endpoints

// @tag.name Health
// @tag.description Health check endpoints
