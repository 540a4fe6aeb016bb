package testutil

import (
	"time"

	"opsmetrics/models"

	"github.com/google/uuid"
)

// CreateTestFeature creates a test feature with default values
func CreateTestFeature(code string) *models.Feature {
	return &models.Feature{
		Code:           code,
		Name:           "Feature " + code,
		Module:         "payments",
		TargetSLAHours: 4.0,
	}
}

// CreateTestFeatureInModule creates a test feature in a specific module
func CreateTestFeatureInModule(code, module string) *models.Feature {
	feature := CreateTestFeature(code)
	feature.Module = module
	return feature
}

// CreateTestUser creates a test user with default values
func CreateTestUser(id string) *models.User {
	return &models.User{
		ID:         id,
		Name:       "User " + id,
		Department: "Operations",
		Role:       "analyst",
		Region:     "EMEA",
		Active:     true,
	}
}

// CreateTestUserIn creates a test user in a specific region and department
func CreateTestUserIn(id, region, department string) *models.User {
	user := CreateTestUser(id)
	user.Region = region
	user.Department = department
	return user
}

// CreateTestTransaction creates a Completed test transaction with a
// generated ID and a 2 hour cycle starting at the given time
func CreateTestTransaction(userID, featureCode string, startTime time.Time) *models.Transaction {
	endTime := startTime.Add(2 * time.Hour)
	cycleHours := 2.0
	return &models.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Region:      "EMEA",
		FeatureCode: featureCode,
		StartTime:   startTime,
		EndTime:     &endTime,
		CycleHours:  &cycleHours,
		Status:      models.StatusCompleted,
		AmountUSD:   150.0,
	}
}

// CreateTestTransactionWithStatus creates a test transaction with a
// specific status. Failed transactions carry an error code and no
// cycle time.
func CreateTestTransactionWithStatus(userID, featureCode string, startTime time.Time, status models.TransactionStatus) *models.Transaction {
	txn := CreateTestTransaction(userID, featureCode, startTime)
	txn.Status = status
	if status == models.StatusFailed {
		errorCode := "ERR_TIMEOUT"
		txn.ErrorCode = &errorCode
		txn.EndTime = nil
		txn.CycleHours = nil
	}
	return txn
}

// CreateTestTransactionWithCycle creates a test transaction with a
// specific cycle time in hours
func CreateTestTransactionWithCycle(userID, featureCode string, startTime time.Time, cycleHours float64) *models.Transaction {
	txn := CreateTestTransaction(userID, featureCode, startTime)
	endTime := startTime.Add(time.Duration(cycleHours * float64(time.Hour)))
	txn.EndTime = &endTime
	txn.CycleHours = &cycleHours
	return txn
}

// CreateTestMonthlyCost creates a test cost row for a month ("YYYY-MM")
func CreateTestMonthlyCost(month string) *models.MonthlyCost {
	return &models.MonthlyCost{
		Month:       month,
		InfraCost:   1000.0,
		SupportCost: 500.0,
		DevCost:     2000.0,
		OtherCost:   250.0,
	}
}

// CreateTestTarget creates a test target row for a month ("YYYY-MM")
func CreateTestTarget(month string) *models.Target {
	return &models.Target{
		Month:               month,
		TargetAvgCycleHours: 3.0,
		TargetErrorRatePct:  5.0,
		TargetCostPerTxn:    20.0,
	}
}
