package models

// Table names of the PTO base.
const (
	TablePTOBalances         = "PTO Balances"
	TableBalanceTransactions = "Balance Transactions"
	TablePTORequests         = "PTO Requests"
	TableApprovals           = "Approvals"
	TableNotifications       = "Notifications"
)

// PTO Balances fields.
const (
	FieldEmployee         = "Employee"
	FieldCurrentBalance   = "Current Balance"
	FieldIsCurrentBalance = "Is Current Balance"
)

// Balance Transactions fields.
const (
	FieldTransactionType = "Transaction Type"
	FieldDaysChanged     = "Days Changed"
	FieldBalanceBefore   = "Balance Before"
	FieldBalanceAfter    = "Balance After"
	FieldTransactionDate = "Transaction Date"
	FieldRelatedRequest  = "Related Request" // also on Notifications
	FieldReason          = "Reason"
	FieldCreatedBy       = "Created By"
	// FieldCreated is a read-only "Created time" field. Stores without one answer it from
	// the record's creation time.
	FieldCreated = "Created"
)

// PTO Requests fields.
const (
	FieldRequestID          = "Request ID"
	FieldEmployeeName       = "Employee Name" // also on Approvals
	FieldStartDate          = "Start Date"
	FieldEndDate            = "End Date"
	FieldDaysRequested      = "Days Requested" // also on Approvals
	FieldRequestType        = "Request Type"   // also on Approvals
	FieldRequestStatus      = "Request Status"
	FieldEmployeeNotes      = "Employee Notes"
	FieldSubmittedDate      = "Submitted Date"
	FieldEmployeeEmail      = "Employee Email"
	FieldEmployeeDepartment = "Employee Department"
	FieldManager            = "Manager"
)

// Approvals fields.
const (
	FieldApprovalID        = "Approval ID"
	FieldPTORequest        = "PTO Request"
	FieldApprover          = "Approver"
	FieldApproverName      = "Approver Name"
	FieldApproverEmail     = "Approver Email"
	FieldApprovalStatus    = "Approval Status"
	FieldManagerComments   = "Manager Comments"
	FieldDecisionDate      = "Decision Date"
	FieldResponseTimeHours = "Response Time (Hours)"
	FieldRequestStartDate  = "Request Start Date"
	FieldRequestEndDate    = "Request End Date"
)

// Notifications fields.
const (
	FieldNotificationID    = "Notification ID"
	FieldRecipient         = "Recipient"
	FieldNotificationType  = "Notification Type"
	FieldRelatedApproval   = "Related Approval"
	FieldSubject           = "Subject"
	FieldMessageContent    = "Message Content"
	FieldSendStatus        = "Send Status"
	FieldScheduledSendDate = "Scheduled Send Date"
	FieldPriority          = "Priority"
)
