package core

// RemainingFee computes the outstanding balance on a semester fee:
// the fee minus what was paid and discounted, plus surcharges and penalties.
func RemainingFee(semesterFee, paid, discount, lateFeeSurcharge, otherPenalties int64) int64 {
	return semesterFee - paid - discount + lateFeeSurcharge + otherPenalties
}
