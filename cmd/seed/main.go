package main

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/parladach/parladach-api/config"
	"github.com/parladach/parladach-api/models"
	"github.com/parladach/parladach-api/utils"
)

type seedUser struct {
	email    string
	password string
	role     models.UserRole
}

// Siembra cuentas de desarrollo con contraseñas conocidas.
// Los emails existentes se saltan.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env")
	}

	settings := config.Load()
	config.InitDB(settings)
	db := config.DB

	hasher := utils.NewPasswordHasher()

	seeds := []seedUser{
		{"student1@parladach.com", "Student123*", models.RoleStudent},
		{"student2@parladach.com", "Student123*", models.RoleStudent},
		{"teacher1@parladach.com", "Teacher123*", models.RoleTeacher},
		{"teacher2@parladach.com", "Teacher123*", models.RoleTeacher},
	}

	for _, s := range seeds {
		var existing models.User
		err := db.Where("email = ?", s.email).First(&existing).Error
		if err == nil {
			log.Printf("ya existe, se salta: %s", s.email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal("error consultando usuarios: ", err)
		}

		hash, err := hasher.Hash(s.password)
		if err != nil {
			log.Fatal("no se pudo hashear la contraseña: ", err)
		}

		user := models.User{
			Email:        s.email,
			PasswordHash: hash,
			Role:         s.role,
			Status:       models.StatusActive,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatal("no se pudo crear el usuario: ", err)
		}
		log.Printf("creado %s (%s)", s.email, s.role)
	}
}
