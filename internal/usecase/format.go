package usecase

import (
	"fmt"
	"strings"
	"time"

	"go-intake-backend/internal/domain"
)

// Pure formatting: payload in, message body out. Every timestamp is an
// input, so identical payloads always render identical bytes.

var frWeekdays = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// formatLongDateFR renders "lundi 2 janvier 2024" in the given timezone.
func formatLongDateFR(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return fmt.Sprintf("%s %d %s %d",
		frWeekdays[int(t.Weekday())], t.Day(), frMonths[int(t.Month())-1], t.Year())
}

// formatDateTimeFR renders "02/01/2024 15:04:05" in the given timezone.
func formatDateTimeFR(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006 15:04:05")
}

func orElse(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func toolList(keys []domain.ToolKey) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, k.Label())
	}
	return orElse(strings.Join(labels, ", "), "Aucun")
}

// appointmentLine renders the booked-slot line, or "" when no date was
// given or the date does not parse.
func appointmentLine(prefix, date, slot string, loc *time.Location) string {
	if date == "" {
		return ""
	}
	t, err := parseAppointmentDate(date)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\n📅 %s : %s à %s", prefix, formatLongDateFR(t, loc), slot)
}

func parseAppointmentDate(date string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", date)
}

// buildQuoteClientEmail is the confirmation sent to the submitter.
func buildQuoteClientEmail(req *domain.QuoteRequest, loc *time.Location) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bonjour %s,\n\n", req.FirstName)
	fmt.Fprintf(&b, "Merci pour votre demande ! Nous avons bien reçu votre formulaire pour le plan %s.\n\n", req.Plan.Label())
	b.WriteString("📋 Récapitulatif de votre demande :\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "• Plan : %s\n", req.Plan.Label())
	fmt.Fprintf(&b, "• Outils sélectionnés : %s\n", toolList(req.SelectedTools))
	fmt.Fprintf(&b, "• Budget estimé : %s\n", orElse(req.Budget, "Non précisé"))
	fmt.Fprintf(&b, "• Délai souhaité : %s", orElse(req.Timeline, "Non précisé"))
	if req.SpecificRequests != "" {
		fmt.Fprintf(&b, "\n• Demandes spécifiques : %s", req.SpecificRequests)
	}
	b.WriteString(appointmentLine("Rendez-vous prévu", req.AppointmentDate, req.AppointmentTime, loc))
	b.WriteString("\n\n")
	if req.Plan == domain.PlanStarter {
		b.WriteString("Notre équipe analyse votre projet et vous enverra un devis détaillé sous 48h.")
	} else {
		b.WriteString("Notre équipe vous confirmera votre créneau d'audit et vous contactera très prochainement.")
	}
	b.WriteString("\n\nÀ très bientôt !\nL'équipe Clyvuum\n")

	return b.String()
}

// buildQuoteOwnerEmail is the summary sent to the site owner.
func buildQuoteOwnerEmail(req *domain.QuoteRequest, loc *time.Location) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🚀 Nouvelle demande de devis – Plan %s\n\n", req.Plan.Label())
	b.WriteString("👤 Client :\n")
	fmt.Fprintf(&b, "• Nom : %s %s\n", req.FirstName, req.LastName)
	fmt.Fprintf(&b, "• Email : %s\n", req.Email)
	fmt.Fprintf(&b, "• Téléphone : %s\n", orElse(req.Phone, "Non renseigné"))
	fmt.Fprintf(&b, "• Entreprise : %s\n", orElse(req.Company, "Non renseignée"))
	fmt.Fprintf(&b, "• Site web : %s\n\n", orElse(req.Website, "Non renseigné"))
	fmt.Fprintf(&b, "🛠 Outils sélectionnés : %s\n\n", toolList(req.SelectedTools))
	b.WriteString("📋 Détails :\n")
	fmt.Fprintf(&b, "• Budget : %s\n", orElse(req.Budget, "Non précisé"))
	fmt.Fprintf(&b, "• Délai : %s\n", orElse(req.Timeline, "Non précisé"))
	fmt.Fprintf(&b, "• Demandes spécifiques : %s", orElse(req.SpecificRequests, "Aucune"))
	b.WriteString(appointmentLine("RDV demandé", req.AppointmentDate, req.AppointmentTime, loc))
	if req.Plan == domain.PlanBusiness {
		b.WriteString("\n\n🔍 Détails de l'audit :\n")
		fmt.Fprintf(&b, "• Processus actuels : %s\n", orElse(req.CurrentProcess, "Non précisé"))
		fmt.Fprintf(&b, "• Points de friction : %s\n", orElse(req.PainPoints, "Non précisé"))
		fmt.Fprintf(&b, "• Outils actuels : %s\n", orElse(req.CurrentTools, "Non précisé"))
		fmt.Fprintf(&b, "• Taille d'équipe : %s\n", orElse(req.TeamSize, "Non précisée"))
		fmt.Fprintf(&b, "• Objectifs : %s", orElse(req.Objectives, "Non précisés"))
	}
	b.WriteString("\n\n")
	if t, err := time.Parse(time.RFC3339, req.SubmittedAt); err == nil {
		fmt.Fprintf(&b, "⏰ Soumis le : %s\n", formatDateTimeFR(t, loc))
	} else {
		fmt.Fprintf(&b, "⏰ Soumis le : %s\n", req.SubmittedAt)
	}

	return b.String()
}

// buildContactOwnerEmail is the contact-form message forwarded to the
// owner. receivedAt is passed in by the caller.
func buildContactOwnerEmail(req *domain.ContactRequest, receivedAt time.Time, loc *time.Location) string {
	return fmt.Sprintf(`📩 Nouveau message de contact

👤 Nom : %s
📧 Email : %s

💬 Message :
%s

⏰ Reçu le : %s
`, req.Name, req.Email, req.Message, formatDateTimeFR(receivedAt, loc))
}
