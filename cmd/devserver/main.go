package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/gahanad/Blogsy-website-front/config"
	"github.com/gahanad/Blogsy-website-front/devserver"
)

func main() {
	var configPath string
	var seedUsers int
	var seedPosts int
	flag.StringVar(&configPath, "config", "", "Path to the configuration file")
	flag.IntVar(&seedUsers, "seed-users", 0, "Seed this many fake users into a fresh database")
	flag.IntVar(&seedPosts, "seed-posts", 3, "Posts per seeded user")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	if configPath != "" {
		if err := config.LoadConfig(configPath); err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}
	} else {
		config.LoadDefaults()
	}

	srv, err := devserver.New(config.AppConfig.Devserver.Database, config.AppConfig.Devserver.JWTSecret)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if seedUsers > 0 {
		if err := srv.Seed(seedUsers, seedPosts); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	addr := config.AppConfig.Devserver.Addr
	log.Printf("devserver listening on %s", addr)
	if err := srv.Router().Run(addr); err != nil {
		log.Fatal(err)
	}
}
