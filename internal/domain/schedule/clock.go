package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zugflow/zugflow-api/internal/httperr"
)

// Gli orari circolano come stringhe HH:MM zero-padded: il confronto
// lessicografico coincide con quello cronologico.

const minutesPerDay = 24 * 60

func parseClock(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 || len(parts[0]) != 2 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	return h*60 + m, nil
}

// ComputeEndTime calcola l'orario di fine a partire da inizio e durata.
// Un risultato oltre la mezzanotte è un errore: gli appuntamenti non
// scavalcano il giorno.
func ComputeEndTime(start string, durationMin int) (string, error) {
	if durationMin < 0 {
		return "", httperr.ErrBusiness("invalid_duration")
	}

	total, err := parseClock(start)
	if err != nil {
		return "", err
	}

	total += durationMin
	if total > minutesPerDay {
		return "", httperr.ErrBusiness("end_time_overflow")
	}
	if total == minutesPerDay {
		return "24:00", nil
	}

	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// Overlaps verifica l'intersezione di due intervalli semiaperti [start,end).
// Intervalli adiacenti (fine di uno = inizio dell'altro) non si sovrappongono.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// IsValidClock riporta se hm è un orario HH:MM ben formato.
func IsValidClock(hm string) bool {
	_, err := parseClock(hm)
	return err == nil
}
