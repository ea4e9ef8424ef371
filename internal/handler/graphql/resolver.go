package graphql

import (
	"context"
	"log/slog"

	"petstore-backend/internal/domain/auth"
	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/domain/product"
	"petstore-backend/internal/domain/promotion"
	resdto "petstore-backend/internal/handler/dto/response"
	"petstore-backend/internal/pkg/clock"
	"petstore-backend/internal/pkg/errs"
	"petstore-backend/internal/usecase"

	"github.com/graph-gophers/graphql-go"
)

// Resolver is the root for both Query and Mutation. Queries are public and
// never fail on storage faults; mutations require an authenticated caller.
type Resolver struct {
	promotions usecase.PromotionUseCase
	categories usecase.CategoryUseCase
	products   usecase.ProductUseCase
	auth       usecase.AuthUseCase
	clock      clock.Clock
	logger     *slog.Logger
}

func NewResolver(
	promotions usecase.PromotionUseCase,
	categories usecase.CategoryUseCase,
	products usecase.ProductUseCase,
	authUseCase usecase.AuthUseCase,
	clk clock.Clock,
	logger *slog.Logger,
) *Resolver {
	return &Resolver{
		promotions: promotions,
		categories: categories,
		products:   products,
		auth:       authUseCase,
		clock:      clk,
		logger:     logger,
	}
}

func (r *Resolver) Health() string {
	return "GraphQL API is running! " + r.clock.Now().Format("2006-01-02T15:04:05")
}

func (r *Resolver) CurrentUser(ctx context.Context) (*UserResolver, error) {
	if err := auth.RequireAuthentication(ctx); err != nil {
		return nil, err
	}
	principal, _ := auth.PrincipalFrom(ctx)

	u, err := r.auth.CurrentUser(ctx, principal.Name)
	if err != nil {
		return nil, err
	}
	return newUserResolver(u), nil
}

// Promotions

func (r *Resolver) Promotions(ctx context.Context) []*PromotionResolver {
	return r.promotionList(safeList(ctx, r.logger, "promotions", r.promotions.ListAll))
}

func (r *Resolver) PromotionsActive(ctx context.Context) []*PromotionResolver {
	return r.promotionList(safeList(ctx, r.logger, "promotionsActive", r.promotions.ListActive))
}

func (r *Resolver) PromotionsExpired(ctx context.Context) []*PromotionResolver {
	return r.promotionList(safeList(ctx, r.logger, "promotionsExpired", r.promotions.ListExpired))
}

func (r *Resolver) PromotionsScheduled(ctx context.Context) []*PromotionResolver {
	return r.promotionList(safeList(ctx, r.logger, "promotionsScheduled", r.promotions.ListScheduled))
}

func (r *Resolver) PromotionsByStatus(ctx context.Context, args struct{ StatusName string }) []*PromotionResolver {
	return r.promotionList(safeList(ctx, r.logger, "promotionsByStatus", func(ctx context.Context) ([]*promotion.Promotion, error) {
		return r.promotions.ListByStatus(ctx, args.StatusName)
	}))
}

func (r *Resolver) PromotionsByCategory(ctx context.Context, args struct{ CategoryID graphql.ID }) []*PromotionResolver {
	return r.promotionList(safeList(ctx, r.logger, "promotionsByCategory", func(ctx context.Context) ([]*promotion.Promotion, error) {
		id, err := parseID(args.CategoryID)
		if err != nil {
			return nil, err
		}
		return r.promotions.ListByCategory(ctx, id)
	}))
}

func (r *Resolver) Promotion(ctx context.Context, args struct{ ID graphql.ID }) *PromotionResolver {
	return r.wrapPromotion(safeOne(ctx, r.logger, "promotion", func(ctx context.Context) (*promotion.Promotion, error) {
		id, err := parseID(args.ID)
		if err != nil {
			return nil, err
		}
		return r.promotions.GetByID(ctx, id)
	}))
}

// Catalog

func (r *Resolver) Categories(ctx context.Context) []*CategoryResolver {
	return r.categoryList(safeList(ctx, r.logger, "categories", r.categories.List))
}

func (r *Resolver) Category(ctx context.Context, args struct{ ID graphql.ID }) *CategoryResolver {
	return r.wrapCategory(safeOne(ctx, r.logger, "category", func(ctx context.Context) (*category.Category, error) {
		id, err := parseID(args.ID)
		if err != nil {
			return nil, err
		}
		return r.categories.Get(ctx, id)
	}))
}

func (r *Resolver) Products(ctx context.Context) []*ProductResolver {
	return r.productList(safeList(ctx, r.logger, "products", r.products.List))
}

func (r *Resolver) ProductsByCategory(ctx context.Context, args struct{ CategoryID graphql.ID }) []*ProductResolver {
	return r.productList(safeList(ctx, r.logger, "productsByCategory", func(ctx context.Context) ([]*product.Product, error) {
		id, err := parseID(args.CategoryID)
		if err != nil {
			return nil, err
		}
		return r.products.ListByCategory(ctx, id)
	}))
}

func (r *Resolver) Product(ctx context.Context, args struct{ ID graphql.ID }) *ProductResolver {
	return r.wrapProduct(safeOne(ctx, r.logger, "product", func(ctx context.Context) (*product.Product, error) {
		id, err := parseID(args.ID)
		if err != nil {
			return nil, err
		}
		return r.products.Get(ctx, id)
	}))
}

// Mutations

// Login converts every failure into success=false instead of a GraphQL error.
func (r *Resolver) Login(ctx context.Context, args struct{ Email, Password string }) *LoginResponseResolver {
	r.logger.Info("GraphQL login attempt", "email", args.Email)

	credentials, err := auth.NewCredentials(args.Email, args.Password)
	if err != nil {
		r.logger.Warn("GraphQL login rejected", "error", err.Error())
		return &LoginResponseResolver{message: resdto.LoginFailedMessage}
	}

	result, err := r.auth.Authenticate(ctx, credentials)
	if err != nil {
		r.logger.Error("GraphQL login failed", "error", err.Error())
		return &LoginResponseResolver{message: resdto.LoginFailedMessage}
	}
	return &LoginResponseResolver{result: result, message: resdto.LoginSucceededMessage}
}

// CreatePromotion defaults the status to ACTIVE's id and the owner to the caller.
func (r *Resolver) CreatePromotion(ctx context.Context, args struct{ Input PromotionInput }) (*PromotionResolver, error) {
	p, err := safeMutation(ctx, r.logger, "Failed to create promotion", func(ctx context.Context) (*promotion.Promotion, error) {
		in, err := args.Input.toUseCase()
		if err != nil {
			return nil, err
		}
		if in.StatusID == nil {
			statusID := promotion.DefaultStatusID
			in.StatusID = &statusID
		}
		if in.UserID == nil {
			if principal, ok := auth.PrincipalFrom(ctx); ok && principal.UserID != 0 {
				userID := principal.UserID
				in.UserID = &userID
			}
		}
		return r.promotions.Create(ctx, in)
	})
	if err != nil {
		return nil, err
	}
	return r.wrapPromotion(p), nil
}

// UpdatePromotion returns null without error when the promotion does not exist.
func (r *Resolver) UpdatePromotion(ctx context.Context, args struct {
	ID    graphql.ID
	Input PromotionInput
}) (*PromotionResolver, error) {
	p, err := safeMutation(ctx, r.logger, "Failed to update promotion", func(ctx context.Context) (*promotion.Promotion, error) {
		id, err := parseID(args.ID)
		if err != nil {
			return nil, err
		}
		in, err := args.Input.toUseCase()
		if err != nil {
			return nil, err
		}
		return r.promotions.Update(ctx, id, in)
	})
	if err != nil {
		return nil, err
	}
	return r.wrapPromotion(p), nil
}

func (r *Resolver) DeletePromotion(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	return safeMutation(ctx, r.logger, "Failed to delete promotion", func(ctx context.Context) (bool, error) {
		id, err := parseID(args.ID)
		if err != nil {
			return false, err
		}
		if !r.promotions.Delete(ctx, id) {
			return false, errs.Newf("Promotion not found with id: %d", id)
		}
		return true, nil
	})
}
