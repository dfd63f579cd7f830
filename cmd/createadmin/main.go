package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/parladach/parladach-api/config"
	"github.com/parladach/parladach-api/models"
	"github.com/parladach/parladach-api/services"
	"github.com/parladach/parladach-api/utils"
)

// Crea (o promueve) la cuenta admin de la plataforma. Idempotente.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env")
	}

	settings := config.Load()
	config.InitDB(settings)
	db := config.DB

	email := services.NormalizeEmail(getenv("ADMIN_EMAIL", "admin@parladach.com"))
	password := getenv("ADMIN_PASSWORD", "Admin123*")

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, hashErr := utils.NewPasswordHasher().Hash(password)
		if hashErr != nil {
			log.Fatal("no se pudo hashear la contraseña: ", hashErr)
		}
		user = models.User{
			Email:        email,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			Status:       models.StatusActive,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatal("no se pudo crear el admin: ", err)
		}
		log.Printf("admin creado: %s (id=%d)", email, user.ID)

	case err != nil:
		log.Fatal("error consultando usuarios: ", err)

	default:
		user.Role = models.RoleAdmin
		user.Status = models.StatusActive
		if err := db.Save(&user).Error; err != nil {
			log.Fatal("no se pudo promover el usuario: ", err)
		}
		log.Printf("usuario existente promovido a admin: %s (id=%d)", email, user.ID)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
