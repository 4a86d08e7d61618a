package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"resumemash/internal/apihandlers"
)

var (
	serveAddr string
	servePort string
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ResumeMash HTTP API server",
	Long: `Starts an HTTP server exposing resume upload, recruiter swiping, and
candidate feedback over a RESTful API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if serveAddr == "" {
			serveAddr = appInstance.Config.Server.Addr
		}
		if servePort == "" {
			servePort = appInstance.Config.Server.Port
		}

		router := gin.Default()
		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			v1.POST("/users", apiHandler.CreateUserHandler)

			resumeGroup := v1.Group("/resumes")
			{
				resumeGroup.POST("", apiHandler.UploadResumeHandler)
				resumeGroup.GET("/:id", apiHandler.GetResumeHandler)
			}

			swipeGroup := v1.Group("/swipes")
			{
				swipeGroup.POST("", apiHandler.RecordSwipeHandler)
				swipeGroup.GET("/next", apiHandler.NextResumeHandler)
			}

			v1.GET("/feedback/:userID", apiHandler.FeedbackHandler)

			fieldGroup := v1.Group("/fields")
			{
				fieldGroup.GET("", apiHandler.ListFieldsHandler)
				fieldGroup.POST("/:field/train", apiHandler.TrainFieldHandler)
			}
		}

		router.GET("/health", func(c *gin.Context) {
			if err := appInstance.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		listenAddr := fmt.Sprintf("%s:%s", serveAddr, servePort)
		log.Infof("Starting ResumeMash API server on http://%s", listenAddr)
		if err := router.Run(listenAddr); err != nil {
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config)")
}
