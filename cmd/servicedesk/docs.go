package main

// @title Service Desk API
// @version 1.0
// @description Warranty lookup, repair tracking, refurbishment intake and fleet management.

// @host localhost:8083
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Warranty
// @tag.description Warranty registration and lookup

// @tag.name Repairs
// @tag.description Repair ticket submission and tracking

// @tag.name Admin
// @tag.description Refurbishment intake board

// @tag.name Fleet
// @tag.description Corporate fleet portal

// @tag.name Health
// @tag.description Health check endpoints
