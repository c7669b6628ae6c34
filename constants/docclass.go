package constants

// DocClass is the document-type classification assigned to raw text.
type DocClass string

// Stable values (stored verbatim in output records).
const (
	DocClassInvoice      DocClass = "invoice"
	DocClassReceipt      DocClass = "receipt"
	DocClassOffer        DocClass = "offer"
	DocClassPrescription DocClass = "prescription"
	DocClassSickNote     DocClass = "sick_note"
	DocClassOther        DocClass = "other"
)

// AllDocClasses lists the classifier's profiles in evaluation order.
// Ties between profiles resolve to the earliest entry.
var AllDocClasses = []DocClass{
	DocClassInvoice,
	DocClassReceipt,
	DocClassOffer,
	DocClassPrescription,
	DocClassSickNote,
}
