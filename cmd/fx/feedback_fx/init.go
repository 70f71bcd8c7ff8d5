package feedback_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"feedbackapi/internal/api/controllers"
	"feedbackapi/internal/repositories"
	"feedbackapi/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideFeedbackRepo, provideFeedbackService, provideFeedbackController,
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(userRepo repositories.UserRepository, feedbackRepo repositories.FeedbackRepositoryInterface) services.FeedbackServiceInterface {
	return services.NewFeedbackService(userRepo, feedbackRepo)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface, logger *zap.Logger) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService, logger)
}
