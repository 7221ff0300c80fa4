package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"DishCraft-Backend/domain"
	"DishCraft-Backend/entities"
	"DishCraft-Backend/pkg/generation"
	"DishCraft-Backend/pkg/image"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// historyLimit caps how many recipes the history endpoint returns.
const historyLimit = 50

type (
	RecipeService interface {
		GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest, userID string) (domain.GenerateRecipeResponse, error)
		GenerateFromName(ctx context.Context, req domain.GenerateFromNameRequest, userID string) (domain.GenerateRecipeResponse, error)
		GetRecipeByID(ctx context.Context, recipeID string) (domain.RecipeDetail, error)
		GetRecipeHistory(ctx context.Context, userID string) ([]domain.RecipeDetail, error)
		ShareRecipe(ctx context.Context, recipeID string, req domain.ShareRecipeRequest) error
	}

	// Mailer sends the share-recipe mail. A function type so tests can swap
	// in a recorder without an SMTP server.
	Mailer func(toEmail, subject, body string) error

	recipeService struct {
		recipeRepository RecipeRepository
		generationClient generation.GenerationClient
		imageResolver    image.ImageResolver
		mailer           Mailer
		logger           *zap.Logger
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	generationClient generation.GenerationClient,
	imageResolver image.ImageResolver,
	mailer Mailer,
	logger *zap.Logger,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		generationClient: generationClient,
		imageResolver:    imageResolver,
		mailer:           mailer,
		logger:           logger,
	}
}

// GenerateRecipe handles ingredients mode. The recipe row is inserted with a
// loading placeholder before image resolution starts, so it is visible and
// linkable while the slow image step runs; the image URL is patched in
// afterwards. Generation failure persists nothing; image failure degrades to
// the placeholder and is not an error.
func (s *recipeService) GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest, userID string) (domain.GenerateRecipeResponse, error) {
	ingredients := generation.FilterIngredients(req.Ingredients)
	if len(ingredients) == 0 {
		return domain.GenerateRecipeResponse{}, domain.ErrNoIngredients
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GenerateRecipeResponse{}, domain.ErrParseUUID
	}

	servingSize := clampServingSize(req.ServingSize)

	prompt := generation.ComposeFromIngredients(generation.IngredientsPrompt{
		Ingredients:    ingredients,
		CookingStyle:   req.CookingStyle,
		Theme:          req.Theme,
		DifficultyMode: req.DifficultyMode,
		Language:       req.Language,
		ServingSize:    servingSize,
	})

	generated, err := s.generationClient.Generate(ctx, prompt)
	if err != nil {
		return domain.GenerateRecipeResponse{}, err
	}

	ingredientsJSON, _ := json.Marshal(ingredients)
	stepsJSON, _ := json.Marshal(generated.Steps)

	rec := entities.Recipe{
		ID:             uuid.New(),
		UserID:         userUUID,
		RecipeName:     generated.RecipeName,
		Ingredients:    string(ingredientsJSON),
		Steps:          string(stepsJSON),
		ImageURL:       domain.ImageLoadingPlaceholder,
		CookingStyle:   req.CookingStyle,
		ServingSize:    servingSize,
		Language:       req.Language,
		DifficultyMode: req.DifficultyMode,
		Theme:          req.Theme,
		CreatedAt:      time.Now(),
	}
	if err := s.recipeRepository.CreateRecipe(ctx, &rec); err != nil {
		return domain.GenerateRecipeResponse{}, err
	}

	imageURL := s.imageResolver.Resolve(ctx, generated.RecipeName, rec.ID.String())
	if err := s.recipeRepository.UpdateImageURL(ctx, rec.ID.String(), imageURL); err != nil {
		// The recipe exists and the response carries the resolved URL; a
		// failed patch only leaves the stored row on the loading placeholder.
		s.logger.Error("failed to update recipe image URL",
			zap.String("recipe_id", rec.ID.String()),
			zap.Error(err),
		)
	}

	return domain.GenerateRecipeResponse{
		Recipe:      generated.RecipeName,
		Ingredients: generated.Ingredients,
		Steps:       generated.Steps,
		ImageURL:    imageURL,
		RecipeID:    rec.ID.String(),
	}, nil
}

// GenerateFromName handles name mode. The image is resolved before the single
// insert, so there is no two-phase update on this path.
func (s *recipeService) GenerateFromName(ctx context.Context, req domain.GenerateFromNameRequest, userID string) (domain.GenerateRecipeResponse, error) {
	recipeName := strings.TrimSpace(req.RecipeName)
	if recipeName == "" {
		return domain.GenerateRecipeResponse{}, domain.ErrRecipeNameRequired
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GenerateRecipeResponse{}, domain.ErrParseUUID
	}

	servingSize := clampServingSize(req.ServingSize)

	prompt := generation.ComposeFromName(generation.NamePrompt{
		RecipeName:  recipeName,
		Language:    req.Language,
		ServingSize: servingSize,
	})

	generated, err := s.generationClient.Generate(ctx, prompt)
	if err != nil {
		return domain.GenerateRecipeResponse{}, err
	}

	recipeID := uuid.New()
	imageURL := s.imageResolver.Resolve(ctx, recipeName, recipeID.String())

	ingredientsJSON, _ := json.Marshal(generated.Ingredients)
	stepsJSON, _ := json.Marshal(generated.Steps)

	rec := entities.Recipe{
		ID:          recipeID,
		UserID:      userUUID,
		RecipeName:  generated.RecipeName,
		Ingredients: string(ingredientsJSON),
		Steps:       string(stepsJSON),
		ImageURL:    imageURL,
		ServingSize: servingSize,
		Language:    req.Language,
		CreatedAt:   time.Now(),
	}
	if err := s.recipeRepository.CreateRecipe(ctx, &rec); err != nil {
		return domain.GenerateRecipeResponse{}, err
	}

	return domain.GenerateRecipeResponse{
		Recipe:      generated.RecipeName,
		Ingredients: generated.Ingredients,
		Steps:       generated.Steps,
		ImageURL:    imageURL,
		RecipeID:    recipeID.String(),
	}, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID string) (domain.RecipeDetail, error) {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}
	return toRecipeDetail(rec), nil
}

func (s *recipeService) GetRecipeHistory(ctx context.Context, userID string) ([]domain.RecipeDetail, error) {
	recipes, err := s.recipeRepository.GetRecipeHistory(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeDetail, 0, len(recipes))
	for _, rec := range recipes {
		result = append(result, toRecipeDetail(rec))
	}
	return result, nil
}

func (s *recipeService) ShareRecipe(ctx context.Context, recipeID string, req domain.ShareRecipeRequest) error {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	detail := toRecipeDetail(rec)
	subject := fmt.Sprintf("Recipe: %s", detail.RecipeName)
	return s.mailer(req.Email, subject, renderShareMail(detail))
}

func clampServingSize(servingSize int) int {
	if servingSize < 1 {
		return 1
	}
	return servingSize
}

// toRecipeDetail maps the stored row to its API projection. The JSON columns
// were written by this service, so decode failures mean a corrupt row; the
// projection degrades to empty slices rather than failing the read.
func toRecipeDetail(rec *entities.Recipe) domain.RecipeDetail {
	var ingredients []string
	_ = json.Unmarshal([]byte(rec.Ingredients), &ingredients)

	var steps []domain.Step
	_ = json.Unmarshal([]byte(rec.Steps), &steps)

	return domain.RecipeDetail{
		ID:             rec.ID.String(),
		UserID:         rec.UserID.String(),
		RecipeName:     rec.RecipeName,
		Ingredients:    ingredients,
		Steps:          steps,
		ImageURL:       rec.ImageURL,
		CookingStyle:   rec.CookingStyle,
		ServingSize:    rec.ServingSize,
		Language:       rec.Language,
		DifficultyMode: rec.DifficultyMode,
		Theme:          rec.Theme,
		CreatedAt:      rec.CreatedAt,
	}
}

func renderShareMail(detail domain.RecipeDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h1>%s</h1>", detail.RecipeName)
	if detail.ImageURL != "" && detail.ImageURL != domain.ImageLoadingPlaceholder {
		fmt.Fprintf(&b, `<img src=%q alt=%q width="300">`, detail.ImageURL, detail.RecipeName)
	}

	b.WriteString("<h2>Ingredients</h2><ul>")
	for _, ing := range detail.Ingredients {
		fmt.Fprintf(&b, "<li>%s</li>", ing)
	}
	b.WriteString("</ul><h2>Steps</h2><ol>")
	for _, step := range detail.Steps {
		b.WriteString("<li>")
		b.WriteString(step.Instruction)
		if step.Time != "" {
			fmt.Fprintf(&b, " (%s)", step.Time)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ol>")
	return b.String()
}
