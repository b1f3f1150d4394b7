package models

type UserRole string
type DocumentType string
type PaymentMethod string
type ExpenseCategory string
type NotificationType string
type NotificationPriority string

const (
	UserRoleResident   UserRole = "resident"
	UserRoleSyndic     UserRole = "syndic"
	UserRoleSuperAdmin UserRole = "superadmin"
	UserRoleOther      UserRole = "other"

	DocumentTypeInvoice  DocumentType = "facture"
	DocumentTypeReceipt  DocumentType = "quittance"
	DocumentTypeCharges  DocumentType = "appel_de_charges"
	DocumentTypeNotice   DocumentType = "avis"
	DocumentTypeContract DocumentType = "contrat"
	DocumentTypeOther    DocumentType = "autre"

	PaymentMethodCash     PaymentMethod = "especes"
	PaymentMethodCheque   PaymentMethod = "cheque"
	PaymentMethodTransfer PaymentMethod = "virement"
	PaymentMethodCard     PaymentMethod = "carte"

	ExpenseCategoryWorks       ExpenseCategory = "travaux"
	ExpenseCategoryMaintenance ExpenseCategory = "entretien"
	ExpenseCategoryRepair      ExpenseCategory = "reparation"
	ExpenseCategoryInsurance   ExpenseCategory = "assurance"
	ExpenseCategoryOther       ExpenseCategory = "autre"

	NotificationTypeDocumentUploaded    NotificationType = "document_uploaded"
	NotificationTypeGeneralAnnouncement NotificationType = "general_announcement"
	NotificationTypePaymentReminder     NotificationType = "payment_reminder"
	NotificationTypeMeeting             NotificationType = "meeting"

	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

// Human-readable labels used in emails and in-app messages.
// The product is French-speaking, so the labels are French.

func (t DocumentType) Label() string {
	switch t {
	case DocumentTypeInvoice:
		return "Facture"
	case DocumentTypeReceipt:
		return "Quittance"
	case DocumentTypeCharges:
		return "Appel de charges"
	case DocumentTypeNotice:
		return "Avis"
	case DocumentTypeContract:
		return "Contrat"
	default:
		return "Autre document"
	}
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCash:
		return "Espèces"
	case PaymentMethodCheque:
		return "Chèque"
	case PaymentMethodTransfer:
		return "Virement"
	case PaymentMethodCard:
		return "Carte bancaire"
	default:
		return string(m)
	}
}

func (c ExpenseCategory) Label() string {
	switch c {
	case ExpenseCategoryWorks:
		return "Travaux"
	case ExpenseCategoryMaintenance:
		return "Entretien"
	case ExpenseCategoryRepair:
		return "Réparation"
	case ExpenseCategoryInsurance:
		return "Assurance"
	default:
		return "Autre"
	}
}

func (t NotificationType) Label() string {
	switch t {
	case NotificationTypeDocumentUploaded:
		return "Nouveau document"
	case NotificationTypeGeneralAnnouncement:
		return "Annonce générale"
	case NotificationTypePaymentReminder:
		return "Rappel de paiement"
	case NotificationTypeMeeting:
		return "Assemblée"
	default:
		return string(t)
	}
}

func (p NotificationPriority) Label() string {
	switch p {
	case PriorityLow:
		return "Basse"
	case PriorityMedium:
		return "Moyenne"
	case PriorityHigh:
		return "Haute"
	default:
		return string(p)
	}
}
