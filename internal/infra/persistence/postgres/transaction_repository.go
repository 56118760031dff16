package postgres

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
	"ratehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// priceBands are the fixed bar-chart buckets. The last band is open-ended.
var priceBands = []struct {
	label string
	min   float64
	max   float64 // 0 means unbounded
}{
	{label: "0-100", min: 0, max: 100},
	{label: "101-200", min: 101, max: 200},
	{label: "201-300", min: 201, max: 300},
	{label: "301-400", min: 301, max: 400},
	{label: "401-500", min: 401, max: 500},
	{label: "501-600", min: 501, max: 600},
	{label: "601-700", min: 601, max: 700},
	{label: "701-800", min: 701, max: 800},
	{label: "801-900", min: 801, max: 900},
	{label: "901-above", min: 901, max: 0},
}

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// monthScoped applies the calendar-month filter when month is set.
func monthScoped(query *gorm.DB, month int) *gorm.DB {
	if month >= 1 && month <= 12 {
		query = query.Where("EXTRACT(MONTH FROM date_of_sale) = ?", month)
	}

	return query
}

// FindPage returns one page ordered by sale date descending, plus the total
// number of matching rows.
func (repo *transactionRepository) FindPage(ctx context.Context, query repository.TransactionQuery) ([]*entity.Transaction, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.TransactionModel{})

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		base = base.Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}
	base = monthScoped(base, query.Month)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count transactions")
	}

	offset := (query.Page - 1) * query.Limit

	var txModels []*model.TransactionModel
	if err := base.
		Order("date_of_sale DESC").
		Limit(query.Limit).
		Offset(offset).
		Find(&txModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list transactions")
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for _, txM := range txModels {
		transactions = append(transactions, toTransactionDomain(txM))
	}

	return transactions, total, nil
}

// Statistics sums sold prices and counts sold/unsold rows, optionally
// month-scoped. Zero values when nothing matches.
func (repo *transactionRepository) Statistics(ctx context.Context, month int) (*entity.TransactionStatistics, error) {
	var stats entity.TransactionStatistics

	query := monthScoped(repo.db.WithContext(ctx).Model(&model.TransactionModel{}), month)

	if err := query.
		Select("COALESCE(SUM(CASE WHEN sold THEN price ELSE 0 END), 0) AS total_sale_amount, " +
			"COUNT(CASE WHEN sold THEN 1 END) AS total_sold_items, " +
			"COUNT(CASE WHEN NOT sold THEN 1 END) AS total_not_sold_items").
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute transaction statistics")
	}

	return &stats, nil
}

// BarChart counts transactions per fixed price band. All ten bands are
// always returned in order, zero counts included.
func (repo *transactionRepository) BarChart(ctx context.Context, month int) ([]*entity.PriceRangeCount, error) {
	counts := make([]*entity.PriceRangeCount, 0, len(priceBands))

	for _, band := range priceBands {
		query := monthScoped(repo.db.WithContext(ctx).Model(&model.TransactionModel{}), month)

		if band.max > 0 {
			query = query.Where("price >= ? AND price <= ?", band.min, band.max)
		} else {
			query = query.Where("price >= ?", band.min)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to count price band %s", band.label)
		}

		counts = append(counts, &entity.PriceRangeCount{
			Range: band.label,
			Count: count,
		})
	}

	return counts, nil
}

// PieChart counts transactions per category present in the data.
func (repo *transactionRepository) PieChart(ctx context.Context, month int) ([]*entity.CategoryCount, error) {
	var counts []*entity.CategoryCount

	query := monthScoped(repo.db.WithContext(ctx).Model(&model.TransactionModel{}), month)

	if err := query.
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute category counts")
	}

	return counts, nil
}

// --- Mapper Functions ---

// toTransactionDomain converts a GORM TransactionModel to a domain Transaction entity.
func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		Image:       data.Image,
		Sold:        data.Sold,
		DateOfSale:  data.DateOfSale,
		StoreID:     data.StoreID,
		CreatedAt:   data.CreatedAt,
	}
}
