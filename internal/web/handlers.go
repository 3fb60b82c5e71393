package web

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ranjanoa/portfolio/internal/contact"
	"github.com/ranjanoa/portfolio/internal/content"
	"github.com/ranjanoa/portfolio/internal/nav"
)

type headerView struct {
	Brand string
	State nav.State
	Menu  nav.Menu
}

type pageView struct {
	Page   *content.Page
	Header headerView
	Year   int
}

func (s *Server) header(state nav.State) headerView {
	return headerView{
		Brand: s.page.Site.Brand,
		State: state,
		Menu:  nav.Render(state),
	}
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageView{
		Page:   s.page,
		Header: s.header(nav.DefaultState()),
		Year:   time.Now().Year(),
	})
}

// navInit runs the startup navigation for the page's location, sent by the
// page script as the location query parameter.
func (s *Server) navInit(c *gin.Context) {
	var location *url.URL
	if raw := c.Query("location"); raw != "" {
		u, err := url.Parse(raw)
		if err != nil {
			log.Printf("Ignoring unparsable location %q: %v", raw, err)
		} else {
			location = u
		}
	}

	vp := newPageViewport(s.page.Sections())
	n := nav.New(vp, nav.DefaultState())
	n.InitializeFromLocation(location)
	s.renderHeader(c, vp, n.State())
}

func (s *Server) navGo(c *gin.Context) {
	state, ok := bindState(c)
	if !ok {
		return
	}
	vp := newPageViewport(s.page.Sections())
	n := nav.New(vp, state)
	n.NavigateTo(c.Query("section"))
	s.renderHeader(c, vp, n.State())
}

func (s *Server) navToggle(c *gin.Context) {
	state, ok := bindState(c)
	if !ok {
		return
	}
	vp := newPageViewport(s.page.Sections())
	n := nav.New(vp, state)
	n.ToggleMobileMenu()
	s.renderHeader(c, vp, n.State())
}

func bindState(c *gin.Context) (nav.State, bool) {
	state := nav.DefaultState()
	if err := c.ShouldBindQuery(&state); err != nil {
		c.String(http.StatusBadRequest, "invalid navigation state")
		return nav.State{}, false
	}
	return state.Normalize(), true
}

func (s *Server) renderHeader(c *gin.Context, vp *pageViewport, state nav.State) {
	if trigger, ok := vp.trigger(); ok {
		c.Header("HX-Trigger", trigger)
	}
	c.HTML(http.StatusOK, "header", s.header(state))
}

func (s *Server) contact(c *gin.Context) {
	var msg contact.Message
	if err := c.ShouldBind(&msg); err != nil {
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": validationMessage(err),
		})
		return
	}

	if err := s.submitter.Submit(c.Request.Context(), msg); err != nil {
		log.Printf("Error submitting contact message: %v", err)
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Please fill in every field of the form."
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "email":
			msgs = append(msgs, "Please enter a valid email address.")
		default:
			msgs = append(msgs, fmt.Sprintf("The %s field is required.", field))
		}
	}
	return strings.Join(msgs, " ")
}
