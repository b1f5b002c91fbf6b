package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a starter category set",
	Long:  `Seed the database with a starter set of spending categories for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			if _, err := db.Exec("DELETE FROM expenses"); err != nil {
				log.Fatalf("failed to clear expenses: %v", err)
			}
			if _, err := db.Exec("DELETE FROM categories"); err != nil {
				log.Fatalf("failed to clear categories: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		starter := []struct {
			name         string
			monthlyLimit string
			color        string
			description  string
		}{
			{"Groceries", "500", "#22c55e", "Food and household supplies"},
			{"Rent", "2000", "#3b82f6", "Monthly rent"},
			{"Utilities", "200", "#f59e0b", "Electricity, water, internet"},
			{"Transport", "150", "#8b5cf6", "Public transport and fuel"},
			{"Entertainment", "100", "#ec4899", "Going out, subscriptions"},
		}

		for _, c := range starter {
			var exists int
			row := db.QueryRow("SELECT 1 FROM categories WHERE name = $1", c.name)
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("category %q already exists, skipping\n", c.name)
				continue
			}

			if _, err := db.Exec(
				"INSERT INTO categories (name, monthly_limit, color, description) VALUES ($1, $2, $3, $4)",
				c.name, c.monthlyLimit, c.color, c.description,
			); err != nil {
				log.Fatalf("failed to insert category %q: %v", c.name, err)
			}
			fmt.Printf("Seeded category %q\n", c.name)
		}
	},
}
