package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"revoked_tokens", "incomes", "expenditures", "users"} {
				if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "budgetwise-demo"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		demoEmail := "demo@budgetwise.dev"
		var demoID uuid.UUID
		row := db.Raw("SELECT id FROM users WHERE email = ?", demoEmail).Row()
		if err := row.Scan(&demoID); err == nil {
			fmt.Println("demo user already exists:", demoEmail)
		} else {
			demoID = uuid.New()
			if err := db.Exec(
				"INSERT INTO users (id, email, username, first_name, last_name, phone_number, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, true, now(), now())",
				demoID, demoEmail, "demo_user", "Demo", "User", "+14155550123", string(hash),
			).Error; err != nil {
				log.Fatalf("failed to insert demo user: %v", err)
			}
			fmt.Println("Seeded demo user:", demoEmail)
		}

		incomes := []struct {
			Name   string
			Amount string
		}{
			{"Monthly salary", "4200.00"},
			{"Freelance project", "850.50"},
			{"Dividend payout", "120.25"},
		}

		for _, in := range incomes {
			var exists int
			row := db.Raw("SELECT 1 FROM incomes WHERE user_id = ? AND name_of_revenue = ?", demoID, in.Name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO incomes (id, name_of_revenue, amount, user_id, created_at, updated_at) VALUES (?, ?, ?, ?, now(), now())",
				uuid.New(), in.Name, in.Amount, demoID,
			).Error; err != nil {
				log.Fatalf("failed to insert income %s: %v", in.Name, err)
			}
			fmt.Printf("Seeded income: %s\n", in.Name)
		}

		expenditures := []struct {
			Category string
			Name     string
			Amount   string
		}{
			{"housing", "Apartment rent", "1500.00"},
			{"groceries", "Weekly groceries", "180.75"},
			{"transport", "Metro pass", "95.00"},
			{"leisure", "Streaming subscriptions", "32.97"},
		}

		for _, ex := range expenditures {
			var exists int
			row := db.Raw("SELECT 1 FROM expenditures WHERE user_id = ? AND name_of_item = ?", demoID, ex.Name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO expenditures (id, category, name_of_item, estimated_amount, user_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				uuid.New(), ex.Category, ex.Name, ex.Amount, demoID,
			).Error; err != nil {
				log.Fatalf("failed to insert expenditure %s: %v", ex.Name, err)
			}
			fmt.Printf("Seeded expenditure: %s\n", ex.Name)
		}

		fmt.Println("Sample data seeded successfully")
	},
}
