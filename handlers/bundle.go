package handlers

// HandlerBundle groups the endpoint handlers behind one struct so route
// registration only needs a single value.
type HandlerBundle struct {
	Auth        *AuthHandler
	Branches    *BranchHandler
	Staff       *StaffHandler
	Students    *StudentHandler
	Classes     *ClassHandler
	Enrollments *EnrollmentHandler
	Payments    *PaymentHandler
	Notices     *NoticeHandler
}
