package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/domain/repository"
	"careadmin/internal/usecase"
	"careadmin/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	packageEntity   = "packages"
	maxAlternatives = 3
)

// packageService implements the PackageUsecase interface.
type packageService struct {
	txManager repository.TransactionManager
	audit     *auditRecorder
	logger    *slog.Logger
}

// NewPackageService is the constructor for packageService.
func NewPackageService(params OwnedServiceParams) usecase.PackageUsecase {
	return &packageService{
		txManager: params.TxManager,
		audit:     newAuditRecorder(params.Publisher, params.Logger),
		logger:    params.Logger,
	}
}

func (srv *packageService) Create(ctx context.Context, pkg *entity.CarePackage) (*entity.CarePackage, error) {
	created := *pkg
	created.ID = uuid.New()
	created.IsActive = true
	created.Currency = strings.ToUpper(created.Currency)
	if created.Features == nil {
		created.Features = []string{}
	}
	if err := validation.Struct(&created); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return translateRepoError(
			repoFactory.PackageRepo().Create(ctx, &created),
			domainerrors.ErrPackageNotFound,
			"failed to create package",
		)
	})
	if err != nil {
		return nil, err
	}

	srv.audit.record(ctx, packageEntity, created.ID.String(), entity.AuditCreate, created.Name)

	return &created, nil
}

func (srv *packageService) Get(ctx context.Context, id uuid.UUID) (*entity.CarePackage, error) {
	var pkg *entity.CarePackage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PackageRepo().FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrPackageNotFound, "package not found")
		}
		pkg = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pkg, nil
}

func (srv *packageService) ListActive(ctx context.Context, packageType string) ([]*entity.CarePackage, error) {
	var packages []*entity.CarePackage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PackageRepo().FindActive(ctx, packageType)
		if err != nil {
			return errors.Wrap(err, "failed to list packages")
		}
		packages = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return packages, nil
}

func (srv *packageService) Deactivate(ctx context.Context, id uuid.UUID) error {
	var deactivated bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		packageRepo := repoFactory.PackageRepo()

		found, err := packageRepo.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrPackageNotFound, "package not found")
		}
		if !found.IsActive {
			return nil
		}
		found.IsActive = false

		if err := packageRepo.Update(ctx, found); err != nil {
			return translateRepoError(err, domainerrors.ErrPackageNotFound, "failed to deactivate package")
		}
		deactivated = true

		return nil
	})
	if err != nil {
		return err
	}

	if deactivated {
		srv.audit.record(ctx, packageEntity, id.String(), entity.AuditDeactivate, "")
	}

	return nil
}

// Recommend walks the active packages of the requested type cheapest first.
// The cheapest wins unless a budget or required features narrow the choice;
// features take precedence over budget.
func (srv *packageService) Recommend(ctx context.Context, req *entity.PackageRecommendationRequest) (*entity.PackageRecommendation, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	candidates, err := srv.ListActive(ctx, req.UserType)
	if err != nil {
		return nil, err
	}

	return recommend(req, candidates), nil
}

func recommend(req *entity.PackageRecommendationRequest, candidates []*entity.CarePackage) *entity.PackageRecommendation {
	result := &entity.PackageRecommendation{
		UserType:     req.UserType,
		Alternatives: []*entity.CarePackage{},
	}
	if len(candidates) == 0 {
		result.Reasoning = "no packages available for user type " + req.UserType

		return result
	}

	chosen := candidates[0]
	reasons := []string{"lowest monthly price"}

	if req.BudgetMonthly != nil {
		if pkg := firstMatch(candidates, func(p *entity.CarePackage) bool { return p.PriceMonthly <= *req.BudgetMonthly }); pkg != nil {
			chosen = pkg
			reasons = []string{fmt.Sprintf("fits the monthly budget of %d", *req.BudgetMonthly)}
		} else {
			reasons = append(reasons, "no package fits the monthly budget")
		}
	}

	if len(req.RequiredFeatures) > 0 {
		if pkg := firstMatch(candidates, func(p *entity.CarePackage) bool { return p.HasFeatures(req.RequiredFeatures) }); pkg != nil {
			chosen = pkg
			reasons = append(reasons, "includes every required feature")
		} else {
			reasons = append(reasons, "no package includes every required feature")
		}
	}

	result.Recommended = chosen
	for _, pkg := range candidates {
		if len(result.Alternatives) == maxAlternatives {
			break
		}
		if pkg.ID != chosen.ID {
			result.Alternatives = append(result.Alternatives, pkg)
		}
	}
	result.Reasoning = chosen.Name + ": " + strings.Join(reasons, "; ")

	return result
}

func firstMatch(candidates []*entity.CarePackage, match func(*entity.CarePackage) bool) *entity.CarePackage {
	for _, pkg := range candidates {
		if match(pkg) {
			return pkg
		}
	}

	return nil
}
