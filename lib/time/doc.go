/*Package time defines millisecond-precision time values for script hosts.

  outline: time
    time defines an instant and a signed duration, both counted in whole
    milliseconds
    path: time
    functions:
      now() time
        the current instant, truncated to whole seconds
      parse(string) time
        parse YYYY-MM-DDTHH:MM:SS[.fff] followed by Z, +HH:MM or -HH:MM
      time(year, month, day, hour, minute, second, millisecond) time
        build an instant from wall-clock fields read in the clock's zone

    types:
      time
        functions:
          tostr() string
            YYYY-MM-DDTHH:MM:SS+0000 in UTC; milliseconds are not shown
        operators:
          time - time = timedelta
      timedelta
        functions:
          tostr() string
            timedelta(<sign><seconds>.<milliseconds>)
        operators:
          -timedelta = timedelta
          timedelta + timedelta = timedelta
          timedelta - timedelta = timedelta (right operand minus left)

  The standing UTC offset that the process would otherwise read from its
  environment is carried by a Clock. Parsing gives the same instant
  whatever the standing offset is; Make reads its fields as wall-clock
  time in that offset.
*/
package time
