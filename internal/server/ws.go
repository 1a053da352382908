package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/addisroute/search"
)

// Websocket message types.
const (
	WSTypeExplore = "explore"
	WSTypeResult  = "result"
	WSTypeError   = "error"
)

// WSMessage is one server-to-client frame on /ws/search. Only the fields
// relevant to Type are set; Index is sent on explore frames only.
type WSMessage struct {
	Type     string           `json:"type"`
	Node     string           `json:"node,omitempty"`
	Index    *int             `json:"index,omitempty"`
	Result   *search.Response `json:"result,omitempty"`
	Error    string           `json:"error,omitempty"`
	Explored []string         `json:"explored,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleWSSearch reads one search request per message and streams each
// explored location before the final result or error frame.
func (s *Server) handleWSSearch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxRequestBody)

	for {
		var wr search.WireRequest
		if err = conn.ReadJSON(&wr); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Printf("websocket error: %v", err)
			}
			return
		}
		if err = s.streamSearch(r, conn, wr); err != nil {
			s.logger.Printf("websocket write failed: %v", err)
			return
		}
	}
}

// streamSearch runs one search and writes its frames. It returns an error
// only when the connection is no longer writable.
func (s *Server) streamSearch(r *http.Request, conn *websocket.Conn, wr search.WireRequest) error {
	var writeErr error
	res, err := s.run(r.Context(), wr.Request(), search.WithOnExplore(func(id string, index int) error {
		writeErr = conn.WriteJSON(WSMessage{Type: WSTypeExplore, Node: id, Index: &index})
		return writeErr
	}))
	switch {
	case writeErr != nil:
		return writeErr
	case err != nil:
		_, body := s.failure(err)
		return conn.WriteJSON(WSMessage{Type: WSTypeError, Error: body.Error})
	case res.Status == search.StatusUnreachable:
		return conn.WriteJSON(WSMessage{Type: WSTypeError, Error: search.MsgUnreachable, Explored: res.Explored})
	}

	resp := res.Response()
	if err = conn.WriteJSON(WSMessage{Type: WSTypeResult, Result: &resp}); err != nil {
		return err
	}

	return nil
}
