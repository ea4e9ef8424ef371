package graphql

import (
	"context"

	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/domain/product"
	"petstore-backend/internal/domain/promotion"
	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/usecase"

	"github.com/graph-gophers/graphql-go"
)

const dateLayout = "2006-01-02"

type PromotionResolver struct {
	p *promotion.Promotion
	r *Resolver
}

func (r *Resolver) wrapPromotion(p *promotion.Promotion) *PromotionResolver {
	if p == nil {
		return nil
	}
	return &PromotionResolver{p: p, r: r}
}

func (r *Resolver) promotionList(list []*promotion.Promotion) []*PromotionResolver {
	out := make([]*PromotionResolver, 0, len(list))
	for _, p := range list {
		if p != nil {
			out = append(out, r.wrapPromotion(p))
		}
	}
	return out
}

func (pr *PromotionResolver) PromotionID() graphql.ID { return toID(pr.p.ID) }
func (pr *PromotionResolver) PromotionName() string { return pr.p.Name }
func (pr *PromotionResolver) Description() *string { return optionalString(pr.p.Description) }
func (pr *PromotionResolver) StartDate() string { return pr.p.StartDate.Format(dateLayout) }
func (pr *PromotionResolver) EndDate() string { return pr.p.EndDate.Format(dateLayout) }
func (pr *PromotionResolver) DiscountValue() float64 { return pr.p.DiscountValue }
func (pr *PromotionResolver) User() *UserResolver { return newUserResolver(pr.p.User) }
func (pr *PromotionResolver) Category() *CategoryResolver {
	return pr.r.wrapCategory(pr.p.Category)
}

func (pr *PromotionResolver) Status() *StatusResolver {
	if pr.p.Status == nil {
		return nil
	}
	return &StatusResolver{s: pr.p.Status}
}

func (pr *PromotionResolver) IsCurrentlyValid() bool {
	return promotion.IsCurrentlyValid(pr.p, pr.r.promotions.Today())
}

func (pr *PromotionResolver) Phase() string {
	return promotion.PhaseOf(pr.p, pr.r.promotions.Today()).String()
}

// Products resolves through the products' promotion reference.
func (pr *PromotionResolver) Products(ctx context.Context) []*ProductResolver {
	list := safeList(ctx, pr.r.logger, "Promotion.products", func(ctx context.Context) ([]*product.Product, error) {
		return pr.r.products.ListByPromotion(ctx, pr.p.ID)
	})
	return pr.r.productList(list)
}

type StatusResolver struct {
	s *promotion.Status
}

func (sr *StatusResolver) StatusID() graphql.ID { return toID(sr.s.ID) }
func (sr *StatusResolver) StatusName() string { return sr.s.Name }

type CategoryResolver struct {
	c *category.Category
	r *Resolver
}

func (r *Resolver) wrapCategory(c *category.Category) *CategoryResolver {
	if c == nil {
		return nil
	}
	return &CategoryResolver{c: c, r: r}
}

func (r *Resolver) categoryList(list []*category.Category) []*CategoryResolver {
	out := make([]*CategoryResolver, 0, len(list))
	for _, c := range list {
		if c != nil {
			out = append(out, r.wrapCategory(c))
		}
	}
	return out
}

func (cr *CategoryResolver) CategoryID() graphql.ID { return toID(cr.c.ID) }
func (cr *CategoryResolver) CategoryName() string { return cr.c.Name }
func (cr *CategoryResolver) Description() *string { return optionalString(cr.c.Description) }

func (cr *CategoryResolver) Promotions(ctx context.Context) []*PromotionResolver {
	list := safeList(ctx, cr.r.logger, "Category.promotions", func(ctx context.Context) ([]*promotion.Promotion, error) {
		return cr.r.promotions.ListByCategory(ctx, cr.c.ID)
	})
	return cr.r.promotionList(list)
}

func (cr *CategoryResolver) Products(ctx context.Context) []*ProductResolver {
	list := safeList(ctx, cr.r.logger, "Category.products", func(ctx context.Context) ([]*product.Product, error) {
		return cr.r.products.ListByCategory(ctx, cr.c.ID)
	})
	return cr.r.productList(list)
}

type ProductResolver struct {
	p *product.Product
	r *Resolver
}

func (r *Resolver) wrapProduct(p *product.Product) *ProductResolver {
	if p == nil {
		return nil
	}
	return &ProductResolver{p: p, r: r}
}

func (r *Resolver) productList(list []*product.Product) []*ProductResolver {
	out := make([]*ProductResolver, 0, len(list))
	for _, p := range list {
		if p != nil {
			out = append(out, r.wrapProduct(p))
		}
	}
	return out
}

func (pr *ProductResolver) ProductID() graphql.ID { return toID(pr.p.ID) }
func (pr *ProductResolver) ProductName() string { return pr.p.Name }
func (pr *ProductResolver) Description() *string { return optionalString(pr.p.Description) }
func (pr *ProductResolver) BasePrice() float64 { return pr.p.BasePrice.InexactFloat64() }
func (pr *ProductResolver) PromotionID() *graphql.ID { return toIDPtr(pr.p.PromotionID) }
func (pr *ProductResolver) Status() *string { return optionalString(pr.p.PromotionStatus) }
func (pr *ProductResolver) Category() *CategoryResolver { return pr.r.wrapCategory(pr.p.Category) }

func (pr *ProductResolver) SKU() *Long {
	if pr.p.SKU == 0 {
		return nil
	}
	v := Long(pr.p.SKU)
	return &v
}

type UserResolver struct {
	u *user.User
}

func newUserResolver(u *user.User) *UserResolver {
	if u == nil {
		return nil
	}
	return &UserResolver{u: u}
}

func (ur *UserResolver) UserID() graphql.ID { return toID(ur.u.ID) }
func (ur *UserResolver) UserName() string { return ur.u.Name }
func (ur *UserResolver) Email() string { return ur.u.Email }

func (ur *UserResolver) Role() *RoleResolver {
	if ur.u.Role == nil {
		return nil
	}
	return &RoleResolver{role: ur.u.Role}
}

type RoleResolver struct {
	role *user.Role
}

func (rr *RoleResolver) RoleID() graphql.ID { return toID(rr.role.ID) }
func (rr *RoleResolver) RoleName() string { return rr.role.Name }

type LoginResponseResolver struct {
	result  *usecase.LoginResult
	message string
}

func (lr *LoginResponseResolver) Success() bool { return lr.result != nil }

func (lr *LoginResponseResolver) Message() *string { return optionalString(lr.message) }

func (lr *LoginResponseResolver) Token() *string {
	if lr.result == nil {
		return nil
	}
	return &lr.result.Token
}

func (lr *LoginResponseResolver) UserID() *graphql.ID {
	if lr.result == nil || lr.result.User == nil {
		return nil
	}
	id := toID(lr.result.User.ID)
	return &id
}

func (lr *LoginResponseResolver) UserName() *string {
	if lr.result == nil || lr.result.User == nil {
		return nil
	}
	return &lr.result.User.Name
}

func (lr *LoginResponseResolver) Email() *string {
	if lr.result == nil || lr.result.User == nil {
		return nil
	}
	return &lr.result.User.Email
}

func (lr *LoginResponseResolver) Role() *string {
	if lr.result == nil || lr.result.User == nil {
		return nil
	}
	return optionalString(lr.result.User.RoleName())
}
