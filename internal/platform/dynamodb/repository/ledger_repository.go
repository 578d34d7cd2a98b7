package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rupeebooks/backend/internal/domain/ledger"
	"github.com/rupeebooks/backend/internal/platform/dynamodb/client"
)

// DynamoDBLedgerRepository implements the ledger.Store interface over the
// shared bookkeeping table. The table is owned and written by the
// bookkeeping service; this repository only reads it.
//
// Layout:
//
//	PK = BOOK#<bookId>        SK = ACCOUNT#<code>        account records
//	PK = BOOK#<bookId>        SK = TXN#<transactionId>   transaction records
//	GSI1PK = BOOK#<bookId>#TXN GSI1SK = DATE#<date>#TXN#<id>
type DynamoDBLedgerRepository struct {
	client client.Client
	table  string
	logger *zap.Logger
}

// NewDynamoDBLedgerRepository creates a new DynamoDBLedgerRepository
func NewDynamoDBLedgerRepository(client client.Client, table string, logger *zap.Logger) *DynamoDBLedgerRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DynamoDBLedgerRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Money amounts are stored as strings so the writing service controls the
// printed precision. Missing or malformed values read as zero rather than
// failing the whole report.
type AccountDDB struct {
	AccountID      string `json:"accountId"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	AccountType    string `json:"accountType"`
	IsBankAccount  bool   `json:"isBankAccount"`
	OpeningBalance string `json:"openingBalance"`
	IsGroup        bool   `json:"isGroup"`
	Currency       string `json:"currency,omitempty"`
}

type EntryDDB struct {
	AccountID string `json:"accountId"`
	Debit     string `json:"debit"`
	Credit    string `json:"credit"`
}

type TransactionDDB struct {
	TransactionID string     `json:"transactionId"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Date          string     `json:"date"`
	Description   string     `json:"description,omitempty"`
	Entries       []EntryDDB `json:"entries"`
	TotalAmount   string     `json:"totalAmount"`
}

// ListAccounts returns the full chart of accounts for a book, in code
// order (the sort key).
func (r *DynamoDBLedgerRepository) ListAccounts(ctx context.Context, bookID string) ([]ledger.Account, error) {
	keyCondition := expression.Key("PK").Equal(expression.Value(fmt.Sprintf("BOOK#%s", bookID))).
		And(expression.Key("SK").BeginsWith("ACCOUNT#"))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition).Build()
	if err != nil {
		return nil, ledger.NewStoreReadError("build accounts expression", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	var accounts []ledger.Account
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, ledger.NewStoreReadError("query accounts", err)
		}

		var records []AccountDDB
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
			return nil, ledger.NewStoreReadError("unmarshal accounts", err)
		}
		for _, rec := range records {
			accounts = append(accounts, rec.toDomain())
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	r.logger.Debug("listed accounts", zap.String("bookId", bookID), zap.Int("count", len(accounts)))
	return accounts, nil
}

// ListPostedTransactions returns POSTED transactions dated within the
// period, in date order via GSI1. DRAFT and VOID rows are filtered out
// server side.
func (r *DynamoDBLedgerRepository) ListPostedTransactions(ctx context.Context, bookID string, period ledger.DateRange) ([]ledger.Transaction, error) {
	keyCondition := expression.Key("GSI1PK").Equal(expression.Value(fmt.Sprintf("BOOK#%s#TXN", bookID)))

	// ISO dates sort lexicographically in the sort key; ￿ keeps the
	// end bound inclusive of every transaction id suffix on that day.
	switch {
	case period.StartDate != "" && period.EndDate != "":
		keyCondition = keyCondition.And(
			expression.Key("GSI1SK").Between(
				expression.Value(fmt.Sprintf("DATE#%s", period.StartDate)),
				expression.Value(fmt.Sprintf("DATE#%s￿", period.EndDate)),
			),
		)
	case period.StartDate != "":
		keyCondition = keyCondition.And(
			expression.Key("GSI1SK").GreaterThanEqual(
				expression.Value(fmt.Sprintf("DATE#%s", period.StartDate)),
			),
		)
	case period.EndDate != "":
		keyCondition = keyCondition.And(
			expression.Key("GSI1SK").LessThanEqual(
				expression.Value(fmt.Sprintf("DATE#%s￿", period.EndDate)),
			),
		)
	}

	filterExpr := expression.Name("status").Equal(expression.Value(string(ledger.StatusPosted)))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition).WithFilter(filterExpr).Build()
	if err != nil {
		return nil, ledger.NewStoreReadError("build transactions expression", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String("GSI1"),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	var transactions []ledger.Transaction
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, ledger.NewStoreReadError("query transactions", err)
		}

		var records []TransactionDDB
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
			return nil, ledger.NewStoreReadError("unmarshal transactions", err)
		}
		for _, rec := range records {
			transactions = append(transactions, rec.toDomain())
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	r.logger.Debug("listed posted transactions",
		zap.String("bookId", bookID),
		zap.String("startDate", period.StartDate),
		zap.String("endDate", period.EndDate),
		zap.Int("count", len(transactions)))
	return transactions, nil
}

func (rec AccountDDB) toDomain() ledger.Account {
	return ledger.Account{
		AccountID:      rec.AccountID,
		Code:           rec.Code,
		Name:           rec.Name,
		AccountType:    ledger.AccountType(rec.AccountType),
		IsBankAccount:  rec.IsBankAccount,
		OpeningBalance: parseMoney(rec.OpeningBalance),
		IsGroup:        rec.IsGroup,
		Currency:       rec.Currency,
	}
}

func (rec TransactionDDB) toDomain() ledger.Transaction {
	entries := make([]ledger.Entry, 0, len(rec.Entries))
	for _, e := range rec.Entries {
		entries = append(entries, ledger.Entry{
			AccountID: e.AccountID,
			Debit:     parseMoney(e.Debit),
			Credit:    parseMoney(e.Credit),
		})
	}
	return ledger.Transaction{
		TransactionID: rec.TransactionID,
		Type:          ledger.TransactionType(rec.Type),
		Status:        ledger.TransactionStatus(rec.Status),
		Date:          rec.Date,
		Description:   rec.Description,
		Entries:       entries,
		TotalAmount:   parseMoney(rec.TotalAmount),
	}
}

func parseMoney(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
