package main

// @title Trade-In Service API
// @version 1.0
// @description Device trade-in valuation and quote tracking.

// @host localhost:8082
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name TradeIn
// @tag.description Trade-in estimate and quote endpoints

// @tag.name Health
// @tag.description Health check endpoints
