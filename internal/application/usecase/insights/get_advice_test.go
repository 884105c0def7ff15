package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

type fakeUserRepo struct {
	user *entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.user == nil {
		return nil, domainerror.ErrUserNotFound
	}
	return f.user, nil
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.user, nil
}
func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.user != nil, nil
}

type fakeAdvisor struct {
	available bool
	advice    string
	err       error
	request   *adapter.AdviceRequest
}

func (f *fakeAdvisor) IsAvailable() bool { return f.available }
func (f *fakeAdvisor) Advise(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	f.request = request
	return f.advice, f.err
}

func TestGetAdviceUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := entity.NewUser("owner@example.com", "Ama", "Ama's Corner Shop", "hash")
	owner.Currency = "GHS"
	sales := []*entity.Sale{
		testSale(t, "Bread", 3, 50, testNow),
	}

	newUseCase := func(advisor adapter.AdvisorService) *GetAdviceUseCase {
		getInsights := NewGetInsightsUseCase(&fakeSaleRepo{sales: sales}, &fakeExpenseRepo{}, nil, time.Minute).
			WithNowFunc(func() time.Time { return testNow })
		return NewGetAdviceUseCase(getInsights, &fakeUserRepo{user: owner}, advisor)
	}

	t.Run("passes a summary of the insights to the advisor", func(t *testing.T) {
		advisor := &fakeAdvisor{available: true, advice: "Stock more bread on Wednesdays."}
		uc := newUseCase(advisor)

		output, err := uc.Execute(ctx, GetAdviceInput{UserID: owner.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Advice != "Stock more bread on Wednesdays." {
			t.Errorf("unexpected advice: %q", output.Advice)
		}
		if advisor.request == nil {
			t.Fatal("expected the advisor to receive a request")
		}
		if advisor.request.ShopName != "Ama's Corner Shop" || advisor.request.Currency != "GHS" {
			t.Errorf("unexpected shop identity: %q / %q", advisor.request.ShopName, advisor.request.Currency)
		}
		if advisor.request.WeeklySales != "150" {
			t.Errorf("expected weekly sales 150, got %q", advisor.request.WeeklySales)
		}
		if len(advisor.request.TopProducts) != 1 || advisor.request.TopProducts[0] != "Bread" {
			t.Errorf("unexpected top products: %v", advisor.request.TopProducts)
		}
	})

	t.Run("missing advisor reports a coded error", func(t *testing.T) {
		uc := newUseCase(nil)

		_, err := uc.Execute(ctx, GetAdviceInput{UserID: owner.ID})
		var insightsErr *domainerror.InsightsError
		if !errors.As(err, &insightsErr) {
			t.Fatalf("expected an insights error, got %v", err)
		}
		if insightsErr.Code != domainerror.ErrCodeAdvisorUnavailable {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeAdvisorUnavailable, insightsErr.Code)
		}
	})

	t.Run("unconfigured advisor reports the same error", func(t *testing.T) {
		uc := newUseCase(&fakeAdvisor{available: false})

		_, err := uc.Execute(ctx, GetAdviceInput{UserID: owner.ID})
		if !errors.Is(err, domainerror.ErrAdvisorUnavailable) {
			t.Errorf("expected ErrAdvisorUnavailable, got %v", err)
		}
	})

	t.Run("advisor failure is wrapped", func(t *testing.T) {
		upstream := errors.New("quota exceeded")
		uc := newUseCase(&fakeAdvisor{available: true, err: upstream})

		_, err := uc.Execute(ctx, GetAdviceInput{UserID: owner.ID})
		var insightsErr *domainerror.InsightsError
		if !errors.As(err, &insightsErr) {
			t.Fatalf("expected an insights error, got %v", err)
		}
		if insightsErr.Code != domainerror.ErrCodeAdvisorFailed {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeAdvisorFailed, insightsErr.Code)
		}
		if !errors.Is(err, upstream) {
			t.Error("expected the upstream error to remain unwrappable")
		}
	})
}
