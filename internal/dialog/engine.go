package dialog

import (
	"fmt"
	"strings"

	"rafflebot/internal/domain"
	"rafflebot/internal/service"
	"rafflebot/internal/session"

	"go.uber.org/zap"
)

// User-facing prompts
const (
	msgWelcome = "Рады приветствовать Вас на розыгрыше умного проектора\n" +
		"Пожалуйста, проверьте вашу подписку на наш корпоративный Telegram-канал\n" +
		"Для проверки нажмите кнопку \"Проверка подписки\""
	msgNotMember = "Вы не подписаны на наш канал. Пожалуйста, подпишитесь, " +
		"чтобы принять участие в розыгрыше."
	msgCheckFailed   = "Не удалось проверить подписку. Попробуйте ещё раз."
	msgAskConsent    = "Для участия в розыгрыше необходимо согласие на обработку персональных данных"
	msgConsentNo     = "Очень жаль. Надеемся, Вы передумаете."
	msgAskSurname    = "Введите вашу фамилию (только русские символы):"
	msgAskFirstName  = "Введите ваше имя (только русские символы):"
	msgAskPatronymic = "Введите ваше отчество (только русские символы):"
	msgBadName       = "Только русские символы."
	msgReadyExisting = "Мы успешно проверили вашу подписку.\n" +
		"Чтобы получить номер для участия в розыгрыше нажмите на \"Получить номер\":"
	msgReadyNew = "Благодарим за информацию\n" +
		"Чтобы получить номер для участия в розыгрыше нажмите на \"Получить номер\":"
	msgInvalidStep = "Эта команда сейчас недоступна. Нажмите /start, чтобы начать заново."
)

// Engine drives the registration dialogue. Each inbound event is
// dispatched by the current session state; the transition function is
// total, so every (state, event) pair yields either a transition or
// the invalid-step reply.
type Engine struct {
	sessions    session.Store
	identity    *service.IdentityService
	tickets     *service.TicketService
	members     MembershipChecker
	lotteryName string
	logger      *zap.Logger
}

// NewEngine creates a dialogue engine for one active lottery
func NewEngine(
	sessions session.Store,
	identity *service.IdentityService,
	tickets *service.TicketService,
	members MembershipChecker,
	lotteryName string,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		sessions:    sessions,
		identity:    identity,
		tickets:     tickets,
		members:     members,
		lotteryName: lotteryName,
		logger:      logger,
	}
}

// Handle applies one inbound event to the user's session and returns
// the reply to render. A non-nil error marks an unexpected failure the
// transport should answer with a generic message; when the returned
// reply is non-empty alongside an error (membership-check failures),
// the reply is the corrective prompt to show instead.
func (e *Engine) Handle(p Profile, ev Event) (Reply, error) {
	// /start always begins a fresh session, dropping any collected data
	if ev.Kind == EventStart {
		e.sessions.Delete(p.TelegramID)
		e.sessions.Put(p.TelegramID, &domain.Session{State: domain.StateIdle})
		return Reply{Text: msgWelcome, Buttons: []string{TokenCheckMembership}}, nil
	}

	sess, ok := e.sessions.Get(p.TelegramID)
	if !ok {
		sess = &domain.Session{State: domain.StateIdle}
		e.sessions.Put(p.TelegramID, sess)
	}

	switch sess.State {
	case domain.StateIdle:
		return e.handleIdle(p, ev)
	case domain.StateAwaitingConsent:
		return e.handleConsent(p, ev, sess)
	case domain.StateCollectingSurname, domain.StateCollectingFirstName, domain.StateCollectingPatronymic:
		return e.handleNameInput(p, ev, sess)
	case domain.StateReadyForTicket:
		return e.handleClaim(p, ev)
	default:
		return Reply{Text: msgInvalidStep}, nil
	}
}

// handleIdle accepts only the membership check
func (e *Engine) handleIdle(p Profile, ev Event) (Reply, error) {
	if ev.Kind != EventButton || ev.Token != TokenCheckMembership {
		return Reply{Text: msgInvalidStep}, nil
	}

	member, err := e.members.IsMember(p.TelegramID)
	if err != nil {
		// A failed check is not a non-member verdict: prompt a retry
		// and keep the state untouched.
		retry := Reply{Text: msgCheckFailed, Buttons: []string{TokenCheckMembership}}
		return retry, fmt.Errorf("%w: %w", domain.ErrMembershipCheck, err)
	}

	if !member {
		return Reply{
			Text:    msgNotMember,
			Buttons: []string{TokenJoinChannel, TokenCheckMembership},
		}, nil
	}

	exists, err := e.identity.Exists(p.TelegramID)
	if err != nil {
		return Reply{}, fmt.Errorf("check identity of user %d: %w", p.TelegramID, err)
	}

	if exists {
		e.sessions.Put(p.TelegramID, &domain.Session{State: domain.StateReadyForTicket})
		return Reply{Text: msgReadyExisting, Buttons: []string{TokenClaimTicket}}, nil
	}

	e.sessions.Put(p.TelegramID, &domain.Session{State: domain.StateAwaitingConsent})
	return Reply{
		Text:    msgAskConsent,
		Buttons: []string{TokenConsentYes, TokenConsentNo},
	}, nil
}

// handleConsent accepts the yes/no answer
func (e *Engine) handleConsent(p Profile, ev Event, sess *domain.Session) (Reply, error) {
	if ev.Kind != EventButton {
		return Reply{Text: msgInvalidStep}, nil
	}

	switch ev.Token {
	case TokenConsentYes:
		sess.State = domain.StateCollectingSurname
		e.sessions.Put(p.TelegramID, sess)
		return Reply{Text: msgAskSurname}, nil

	case TokenConsentNo:
		e.sessions.Delete(p.TelegramID)
		return Reply{Text: msgConsentNo, Buttons: []string{TokenCheckMembership}}, nil

	default:
		return Reply{Text: msgInvalidStep}, nil
	}
}

// handleNameInput validates and stores one of the three name fields
func (e *Engine) handleNameInput(p Profile, ev Event, sess *domain.Session) (Reply, error) {
	if ev.Kind != EventText {
		return Reply{Text: msgInvalidStep}, nil
	}

	if !domain.ValidNamePart(ev.Text) {
		// Input discarded, state unchanged
		return Reply{Text: msgBadName}, nil
	}
	value := strings.TrimSpace(ev.Text)

	switch sess.State {
	case domain.StateCollectingSurname:
		sess.Surname = value
		sess.State = domain.StateCollectingFirstName
		e.sessions.Put(p.TelegramID, sess)
		return Reply{Text: msgAskFirstName}, nil

	case domain.StateCollectingFirstName:
		sess.FirstName = value
		sess.State = domain.StateCollectingPatronymic
		e.sessions.Put(p.TelegramID, sess)
		return Reply{Text: msgAskPatronymic}, nil

	default: // domain.StateCollectingPatronymic
		sess.Patronymic = value
		if err := e.register(p, sess); err != nil {
			return Reply{}, err
		}

		sess.State = domain.StateReadyForTicket
		e.sessions.Put(p.TelegramID, sess)
		return Reply{Text: msgReadyNew, Buttons: []string{TokenClaimTicket}}, nil
	}
}

// register persists the collected identity, insert-if-absent
func (e *Engine) register(p Profile, sess *domain.Session) error {
	fullName := fmt.Sprintf("%s %s %s", sess.Surname, sess.FirstName, sess.Patronymic)

	user := &domain.User{
		TelegramID:     p.TelegramID,
		FullName:       fullName,
		FullNameFromTG: strings.TrimSpace(p.FirstName + " " + p.LastName),
		Username:       p.Username,
		IsActive:       true,
	}

	if err := e.identity.Register(user); err != nil {
		return fmt.Errorf("register user %d: %w", p.TelegramID, err)
	}

	e.logger.Info("User registered",
		zap.Int64("telegram_id", p.TelegramID),
		zap.String("full_name", fullName),
	)
	return nil
}

// handleClaim accepts the ticket claim. The session is discarded
// whatever the issuance outcome.
func (e *Engine) handleClaim(p Profile, ev Event) (Reply, error) {
	if ev.Kind != EventButton || ev.Token != TokenClaimTicket {
		return Reply{Text: msgInvalidStep}, nil
	}

	e.sessions.Delete(p.TelegramID)

	number, err := e.tickets.IssueOrGet(p.TelegramID, e.lotteryName)
	if err != nil {
		return Reply{}, fmt.Errorf("claim ticket for user %d: %w", p.TelegramID, err)
	}

	return Reply{Text: fmt.Sprintf("Ваш номер участия: %d", number)}, nil
}
