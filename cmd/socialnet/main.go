package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"socialnet/internal/db"
	"socialnet/internal/models"
)

var rootCmd = &cobra.Command{
	Use:   "socialnet",
	Short: "Manage the social-network database",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database file and apply the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("db")
		database, err := db.Open(path)
		if err != nil {
			return err
		}
		defer database.Close()
		log.Printf("database ready at %s", path)
		return nil
	},
}

var seedUsers int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demo data",
	RunE:  runSeed,
}

// runSeed creates a ring of demo users where each user follows the next,
// publishes one post with an image attachment, and comments on the
// previous user's post.
func runSeed(cmd *cobra.Command, args []string) error {
	database, err := db.Open(viper.GetString("db"))
	if err != nil {
		return err
	}
	defer database.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userIDs := make([]int64, 0, seedUsers)
	postIDs := make([]int64, 0, seedUsers)
	for i := 0; i < seedUsers; i++ {
		name := fmt.Sprintf("user%02d", i+1)
		userID, err := models.CreateUser(database, name, name+"@example.com", string(hash), true)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", name, err)
		}
		postID, err := models.CreatePost(database, int(userID), models.Media{
			Type: "image",
			URL:  fmt.Sprintf("https://cdn.example.com/media/%s.jpg", uuid.NewString()),
		})
		if err != nil {
			return fmt.Errorf("seed post for %s: %w", name, err)
		}
		userIDs = append(userIDs, userID)
		postIDs = append(postIDs, postID)
	}

	for i := range userIDs {
		next := (i + 1) % len(userIDs)
		if next == i {
			break
		}
		if err := models.Follow(database, int(userIDs[i]), int(userIDs[next])); err != nil {
			return fmt.Errorf("seed follow: %w", err)
		}
		if _, err := models.CreateComment(database, int(postIDs[next]), int(userIDs[i]), "nice one!"); err != nil {
			return fmt.Errorf("seed comment: %w", err)
		}
	}

	log.Printf("seeded %d users with posts, media, follows and comments", seedUsers)
	return nil
}

func main() {
	rootCmd.PersistentFlags().String("db", "socialnet.db", "path to the sqlite database file")
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.SetEnvPrefix("socialnet")
	viper.AutomaticEnv()

	seedCmd.Flags().IntVar(&seedUsers, "users", 5, "number of demo users")
	rootCmd.AddCommand(initCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
