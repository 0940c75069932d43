package processor

import (
	"fmt"
	"strconv"

	"github.com/twilio/twilio-go/twiml"
)

const (
	QuestionText = "Nivel de decisión frente al candidato"

	noAnswerMessage      = "No recibimos respuesta. Gracias por su tiempo. Hasta luego."
	invalidAnswerMessage = "No se recibió una respuesta válida. Gracias por su tiempo."
	thanksMessage        = "Gracias por responder. Que tenga un buen día."
)

// Script renders the TwiML documents of the survey
type Script struct {
	Language      string
	GatherTimeout int
}

func question(candidate string) string {
	return fmt.Sprintf("Hola, le llamamos para una breve encuesta ciudadana. "+
		"Pensando en las próximas elecciones, ¿qué tan decidido está a votar por %s? "+
		"Si está totalmente decidido, diga sí o marque 1. "+
		"Si lo está considerando pero no está seguro, diga dudoso o marque 2. "+
		"Si no piensa votar por esta persona, diga no o marque 3.", candidate)
}

// CallPath is the voice webhook path of a call, used as the gather action
func CallPath(callID int64) string {
	return fmt.Sprintf("/twilio/call/%d", callID)
}

// StatusPath is the status callback path of a call
func StatusPath(callID int64) string {
	return CallPath(callID) + "/status"
}

// Ask gathers one digit or speech for the survey question and closes the
// call if the gather times out.
func (s Script) Ask(callID int64, candidate string) (string, error) {
	gather := twiml.VoiceGather{
		Input:     "dtmf speech",
		NumDigits: "1",
		Action:    CallPath(callID),
		Method:    "POST",
		Timeout:   strconv.Itoa(s.GatherTimeout),
		Language:  s.Language,
		InnerElements: []twiml.Element{
			twiml.VoiceSay{Message: question(candidate), Language: s.Language},
		},
	}
	return twiml.Voice([]twiml.Element{
		gather,
		twiml.VoiceSay{Message: noAnswerMessage, Language: s.Language},
		twiml.VoiceHangup{},
	})
}

// Thanks closes a call whose answer was recorded
func (s Script) Thanks() (string, error) {
	return s.closing(thanksMessage)
}

// InvalidAnswer closes a call whose answer could not be classified
func (s Script) InvalidAnswer() (string, error) {
	return s.closing(invalidAnswerMessage)
}

func (s Script) closing(message string) (string, error) {
	return twiml.Voice([]twiml.Element{
		twiml.VoiceSay{Message: message, Language: s.Language},
		twiml.VoiceHangup{},
	})
}
