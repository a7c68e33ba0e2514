package main

import (
	"gin-crud-api/config"
	"gin-crud-api/infra"
	"gin-crud-api/models"
)

func main() {
	cfg := config.Load()
	db := infra.SetupDB(cfg)

	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.BlacklistedToken{}); err != nil {
		panic("Failed to migrate database")
	}
}
