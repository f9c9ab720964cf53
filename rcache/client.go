// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package rcache

import (
	"bufio"
	"fmt"
	"net"

	"github.com/irifrance/resynth/ilist"
)

// Client is a connection to an rcache Server.
type Client struct {
	conn net.Conn
	br   *bufio.Reader
	bw   *bufio.Writer
}

// Dial connects to the cache server at addrStr.
func Dial(addrStr string) (*Client, error) {
	a := ParseAddr(addrStr)
	conn, err := net.Dial(a.Network, a.NetAddr)
	if err != nil {
		return nil, fmt.Errorf("rcache: dial %s: %w", addrStr, err)
	}
	return &Client{conn: conn, br: bufio.NewReader(conn), bw: bufio.NewWriter(conn)}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Get looks up key and reports whether it was present.
func (c *Client) Get(key Key) (*ilist.List, bool, error) {
	if err := c.bw.WriteByte(byte(opGet)); err != nil {
		return nil, false, err
	}
	if _, err := c.bw.Write(key[:]); err != nil {
		return nil, false, err
	}
	if err := c.bw.Flush(); err != nil {
		return nil, false, err
	}
	b, err := c.br.ReadByte()
	if err != nil {
		return nil, false, err
	}
	switch op(b) {
	case opMiss:
		return nil, false, nil
	case opHit:
		l, err := ilist.DecodeWire(c.br)
		if err != nil {
			return nil, false, err
		}
		return l, true, nil
	default:
		return nil, false, fmt.Errorf("rcache: unexpected response op %d", b)
	}
}

// Put stores l under key, replacing any prior entry.
func (c *Client) Put(key Key, l *ilist.List) error {
	if err := c.bw.WriteByte(byte(opPut)); err != nil {
		return err
	}
	if _, err := c.bw.Write(key[:]); err != nil {
		return err
	}
	if err := ilist.Encode(c.bw, l); err != nil {
		return err
	}
	if err := c.bw.Flush(); err != nil {
		return err
	}
	b, err := c.br.ReadByte()
	if err != nil {
		return err
	}
	if op(b) != opAck {
		return fmt.Errorf("rcache: unexpected response op %d", b)
	}
	return nil
}
